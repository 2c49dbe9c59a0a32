package services

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"sales-request-system/internal/entities"
	"sales-request-system/internal/repositories"
	"sales-request-system/pkg/constants"
)

type ReportServiceInterface interface {
	BuildDaily(ctx context.Context, date time.Time) (*entities.ReportData, error)
	BuildWeekly(ctx context.Context, year, week int) (*entities.ReportData, error)
	BuildMonthly(ctx context.Context, year int, month time.Month) (*entities.ReportData, error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	logRepo     repositories.RequestLogRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	logRepo repositories.RequestLogRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		requestRepo: requestRepo,
		logRepo:     logRepo,
		logger:      logger,
	}
}

// weekBounds returns the Monday and Sunday of ISO-style week `week` of
// `year`: Jan 1 plus (week-1) weeks, normalized back to that week's Monday.
func weekBounds(year, week int) (time.Time, time.Time) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	mondayOffset := (int(jan1.Weekday()) + 6) % 7
	start := jan1.AddDate(0, 0, (week-1)*7-mondayOffset)
	return start, start.AddDate(0, 0, 6)
}

// monthBounds returns the first and last day of the calendar month.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// sortWorkingSet orders requests by status priority: closed first, then the
// pending stages, then in-progress, unknown statuses last. Ties keep their
// incoming order.
func sortWorkingSet(requests []entities.Request) {
	sort.SliceStable(requests, func(i, j int) bool {
		return constants.StatusSortOrder(requests[i].Status) < constants.StatusSortOrder(requests[j].Status)
	})
}

// countOverdue applies the live overdue rule: durations of non-closed
// requests are recomputed before comparing against the target; closed
// requests use their frozen duration. Requests without a positive target are
// skipped.
func countOverdue(requests []entities.Request, now time.Time) int {
	overdue := 0
	for i := range requests {
		req := requests[i]
		projectDuration(&req, now)
		if req.IsOverdue() {
			overdue++
		}
	}
	return overdue
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// statusBreakdown counts the period's created requests per status.
func statusBreakdown(requests []entities.Request) []entities.StatusCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, req := range requests {
		if _, seen := counts[req.Status]; !seen {
			order = append(order, req.Status)
		}
		counts[req.Status]++
	}

	breakdown := make([]entities.StatusCount, 0, len(order))
	for _, status := range order {
		breakdown = append(breakdown, entities.StatusCount{Name: status, Count: counts[status]})
	}
	return breakdown
}

// teamPerformance counts completions per team member over the period's
// created requests.
func teamPerformance(requests []entities.Request) []entities.TeamPerformance {
	completed := make(map[string]int)
	order := make([]string, 0)
	for _, req := range requests {
		if _, seen := completed[req.TeamMemberInvolved]; !seen {
			order = append(order, req.TeamMemberInvolved)
			completed[req.TeamMemberInvolved] = 0
		}
		if req.IsClosed() {
			completed[req.TeamMemberInvolved]++
		}
	}

	perf := make([]entities.TeamPerformance, 0, len(order))
	for _, name := range order {
		perf = append(perf, entities.TeamPerformance{Name: name, Completed: completed[name]})
	}
	return perf
}

// projectTypeBreakdown groups the period's created requests by the legacy
// project-type label with the average duration, most frequent first.
func projectTypeBreakdown(requests []entities.Request) []entities.TypeBreakdown {
	type agg struct {
		count int
		days  int
	}
	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, req := range requests {
		g, seen := groups[req.ProjectType]
		if !seen {
			g = &agg{}
			groups[req.ProjectType] = g
			order = append(order, req.ProjectType)
		}
		g.count++
		g.days += req.DurationDays
	}

	breakdown := make([]entities.TypeBreakdown, 0, len(order))
	for _, name := range order {
		g := groups[name]
		breakdown = append(breakdown, entities.TypeBreakdown{
			Name:    name,
			Count:   g.count,
			AvgDays: round1(float64(g.days) / float64(g.count)),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].Count > breakdown[j].Count })
	return breakdown
}

// departmentBreakdown groups the period's created requests by department
// with the average duration, busiest first.
func departmentBreakdown(requests []entities.Request) []entities.DepartmentBreakdown {
	type agg struct {
		count int
		days  int
	}
	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, req := range requests {
		name := req.Department.String
		g, seen := groups[name]
		if !seen {
			g = &agg{}
			groups[name] = g
			order = append(order, name)
		}
		g.count++
		g.days += req.DurationDays
	}

	breakdown := make([]entities.DepartmentBreakdown, 0, len(order))
	for _, name := range order {
		g := groups[name]
		breakdown = append(breakdown, entities.DepartmentBreakdown{
			Name:     name,
			Requests: g.count,
			AvgDays:  round1(float64(g.days) / float64(g.count)),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool { return breakdown[i].Requests > breakdown[j].Requests })
	return breakdown
}

// build assembles the shared part of every report: scalar counts, period
// activities and the sorted working set.
func (s *ReportService) build(ctx context.Context, typ entities.ReportType, from, to time.Time) (*entities.ReportData, error) {
	data := &entities.ReportData{Type: typ, PeriodFrom: from, PeriodTo: to}
	now := time.Now()

	var err error
	if data.Created, err = s.requestRepo.CountCreatedBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if data.Completed, err = s.requestRepo.CountCompletedBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if data.InProgress, err = s.requestRepo.CountInProgress(ctx); err != nil {
		return nil, err
	}

	targeted, err := s.requestRepo.FetchWithTargets(ctx)
	if err != nil {
		return nil, err
	}
	data.Overdue = countOverdue(targeted, now)

	if data.Activities, err = s.logRepo.FetchBetween(ctx, from, to, typ.ActivityLimit()); err != nil {
		return nil, err
	}

	workingSet, err := s.requestRepo.FetchWorkingSet(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range workingSet {
		projectDuration(&workingSet[i], now)
	}
	sortWorkingSet(workingSet)
	data.Requests = workingSet

	return data, nil
}

func (s *ReportService) BuildDaily(ctx context.Context, date time.Time) (*entities.ReportData, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return s.build(ctx, entities.ReportDaily, day, day)
}

func (s *ReportService) BuildWeekly(ctx context.Context, year, week int) (*entities.ReportData, error) {
	from, to := weekBounds(year, week)
	data, err := s.build(ctx, entities.ReportWeekly, from, to)
	if err != nil {
		return nil, err
	}

	created, err := s.requestRepo.FetchCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	data.StatusBreakdown = statusBreakdown(created)
	data.TeamPerformance = teamPerformance(created)

	return data, nil
}

func (s *ReportService) BuildMonthly(ctx context.Context, year int, month time.Month) (*entities.ReportData, error) {
	from, to := monthBounds(year, month)
	data, err := s.build(ctx, entities.ReportMonthly, from, to)
	if err != nil {
		return nil, err
	}

	created, err := s.requestRepo.FetchCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	data.ProjectTypes = projectTypeBreakdown(created)
	data.Departments = departmentBreakdown(created)

	return data, nil
}
