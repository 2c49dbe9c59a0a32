package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/entities"
	"sales-request-system/pkg/constants"
)

// fakeRequestRepo serves canned data for aggregation tests.
type fakeRequestRepo struct {
	created    int
	completed  int
	inProgress int
	targeted   []entities.Request
	workingSet []entities.Request
	period     []entities.Request
}

func (f *fakeRequestRepo) GetAll(ctx context.Context, filter dto.RequestFilter) ([]entities.Request, error) {
	return f.workingSet, nil
}
func (f *fakeRequestRepo) FindByID(ctx context.Context, id uint64) (*entities.Request, error) {
	return nil, nil
}
func (f *fakeRequestRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error) {
	return nil, nil
}
func (f *fakeRequestRepo) Create(ctx context.Context, req *entities.Request) (uint64, error) {
	return 0, nil
}
func (f *fakeRequestRepo) UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.Request) error {
	return nil
}
func (f *fakeRequestRepo) Delete(ctx context.Context, id uint64) error { return nil }
func (f *fakeRequestRepo) CountAll(ctx context.Context) (int, error)   { return 0, nil }
func (f *fakeRequestRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	return nil, nil
}
func (f *fakeRequestRepo) CountClosedSince(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}
func (f *fakeRequestRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return f.created, nil
}
func (f *fakeRequestRepo) CountCompletedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return f.completed, nil
}
func (f *fakeRequestRepo) CountInProgress(ctx context.Context) (int, error) {
	return f.inProgress, nil
}
func (f *fakeRequestRepo) FetchWithTargets(ctx context.Context) ([]entities.Request, error) {
	return f.targeted, nil
}
func (f *fakeRequestRepo) FetchWorkingSet(ctx context.Context, from, to time.Time) ([]entities.Request, error) {
	return f.workingSet, nil
}
func (f *fakeRequestRepo) FetchCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Request, error) {
	return f.period, nil
}

type fakeLogRepo struct {
	logs      []entities.RequestLog
	lastLimit int
}

func (f *fakeLogRepo) Create(ctx context.Context, log *entities.RequestLog) error { return nil }
func (f *fakeLogRepo) GetByRequestID(ctx context.Context, requestID uint64) ([]entities.RequestLog, error) {
	return f.logs, nil
}
func (f *fakeLogRepo) FetchBetween(ctx context.Context, from, to time.Time, limit int) ([]entities.RequestLog, error) {
	f.lastLimit = limit
	return f.logs, nil
}

func TestWeekBounds(t *testing.T) {
	// 2024-01-01 is a Monday, so week 1 starts on it.
	from, to := weekBounds(2024, 1)
	assert.Equal(t, day(2024, time.January, 1), from)
	assert.Equal(t, day(2024, time.January, 7), to)

	from, to = weekBounds(2024, 2)
	assert.Equal(t, day(2024, time.January, 8), from)
	assert.Equal(t, day(2024, time.January, 14), to)

	// 2025-01-01 is a Wednesday; week 1 is normalized back to Monday Dec 30.
	from, to = weekBounds(2025, 1)
	assert.Equal(t, day(2024, time.December, 30), from)
	assert.Equal(t, day(2025, time.January, 5), to)
}

func TestMonthBounds(t *testing.T) {
	from, to := monthBounds(2024, time.February)
	assert.Equal(t, day(2024, time.February, 1), from)
	assert.Equal(t, day(2024, time.February, 29), to, "leap year february")

	from, to = monthBounds(2025, time.April)
	assert.Equal(t, day(2025, time.April, 1), from)
	assert.Equal(t, day(2025, time.April, 30), to)
}

func TestSortWorkingSet(t *testing.T) {
	requests := []entities.Request{
		{ID: 1, Status: constants.StatusInProgress},
		{ID: 2, Status: "Retired Status"},
		{ID: 3, Status: constants.StatusClosed},
		{ID: 4, Status: constants.StatusPendingReview},
		{ID: 5, Status: constants.StatusClosed},
	}

	sortWorkingSet(requests)

	ids := make([]uint64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	// Closed first (stable for ties), pending next, in-progress, unknown last.
	assert.Equal(t, []uint64{3, 5, 4, 1, 2}, ids)
}

func TestCountOverdue(t *testing.T) {
	now := day(2024, time.January, 31)
	received := day(2024, time.January, 1)

	requests := []entities.Request{
		// Open, 23 working days against a target of 5: overdue.
		{Status: constants.StatusInProgress, DateRequestReceived: received, TargetDays: null.IntFrom(5)},
		// Open, generous target: not overdue.
		{Status: constants.StatusInProgress, DateRequestReceived: received, TargetDays: null.IntFrom(60)},
		// Closed with a frozen duration above its target: stays overdue.
		{Status: constants.StatusClosed, DateRequestReceived: received, TargetDays: null.IntFrom(2), DurationDays: 4},
		// Closed under target even though the calendar moved on.
		{Status: constants.StatusClosed, DateRequestReceived: received, TargetDays: null.IntFrom(10), DurationDays: 3},
		// Zero target never counts.
		{Status: constants.StatusInProgress, DateRequestReceived: received, TargetDays: null.IntFrom(0)},
	}

	assert.Equal(t, 2, countOverdue(requests, now))
}

func TestCountOverdueDoesNotMutateInput(t *testing.T) {
	now := day(2024, time.January, 31)
	requests := []entities.Request{
		{Status: constants.StatusInProgress, DateRequestReceived: day(2024, time.January, 1), TargetDays: null.IntFrom(5), DurationDays: 1},
	}

	countOverdue(requests, now)
	assert.Equal(t, 1, requests[0].DurationDays)
}

func TestStatusBreakdown(t *testing.T) {
	breakdown := statusBreakdown([]entities.Request{
		{Status: constants.StatusInProgress},
		{Status: constants.StatusClosed},
		{Status: constants.StatusInProgress},
	})

	require.Len(t, breakdown, 2)
	assert.Equal(t, entities.StatusCount{Name: constants.StatusInProgress, Count: 2}, breakdown[0])
	assert.Equal(t, entities.StatusCount{Name: constants.StatusClosed, Count: 1}, breakdown[1])
}

func TestTeamPerformance(t *testing.T) {
	perf := teamPerformance([]entities.Request{
		{TeamMemberInvolved: "John Doe", Status: constants.StatusClosed},
		{TeamMemberInvolved: "John Doe", Status: constants.StatusInProgress},
		{TeamMemberInvolved: "Adaeze Okafor", Status: constants.StatusInProgress},
	})

	require.Len(t, perf, 2)
	assert.Equal(t, entities.TeamPerformance{Name: "John Doe", Completed: 1}, perf[0])
	assert.Equal(t, entities.TeamPerformance{Name: "Adaeze Okafor", Completed: 0}, perf[1])
}

func TestProjectTypeBreakdown(t *testing.T) {
	breakdown := projectTypeBreakdown([]entities.Request{
		{ProjectType: "Cloud Service", DurationDays: 2},
		{ProjectType: "Cloud Service", DurationDays: 5},
		{ProjectType: "Security", DurationDays: 10},
	})

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Cloud Service", breakdown[0].Name)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.InDelta(t, 3.5, breakdown[0].AvgDays, 0.001)
	assert.Equal(t, "Security", breakdown[1].Name)
	assert.InDelta(t, 10.0, breakdown[1].AvgDays, 0.001)
}

func TestDepartmentBreakdown(t *testing.T) {
	breakdown := departmentBreakdown([]entities.Request{
		{Department: null.StringFrom("Sales"), DurationDays: 4},
		{Department: null.StringFrom("Sales"), DurationDays: 2},
		{Department: null.StringFrom("Marketing"), DurationDays: 7},
	})

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Sales", breakdown[0].Name)
	assert.Equal(t, 2, breakdown[0].Requests)
	assert.InDelta(t, 3.0, breakdown[0].AvgDays, 0.001)
}

func TestBuildWeeklyAssemblesReport(t *testing.T) {
	repo := &fakeRequestRepo{
		created:    4,
		completed:  2,
		inProgress: 3,
		workingSet: []entities.Request{
			{ID: 1, Status: constants.StatusInProgress, DateRequestReceived: day(2024, time.January, 1)},
			{ID: 2, Status: constants.StatusClosed, DateRequestReceived: day(2024, time.January, 1), DurationDays: 2},
		},
		period: []entities.Request{
			{Status: constants.StatusClosed, TeamMemberInvolved: "John Doe"},
			{Status: constants.StatusInProgress, TeamMemberInvolved: "John Doe"},
		},
	}
	logRepo := &fakeLogRepo{logs: []entities.RequestLog{{ID: 1}}}
	svc := NewReportService(repo, logRepo, zap.NewNop())

	data, err := svc.BuildWeekly(context.Background(), 2024, 1)
	require.NoError(t, err)

	assert.Equal(t, entities.ReportWeekly, data.Type)
	assert.Equal(t, day(2024, time.January, 1), data.PeriodFrom)
	assert.Equal(t, day(2024, time.January, 7), data.PeriodTo)
	assert.Equal(t, 4, data.Created)
	assert.Equal(t, 2, data.Completed)
	assert.Equal(t, 3, data.InProgress)
	assert.Equal(t, 100, logRepo.lastLimit, "weekly reports cap activities at 100")

	// Working set comes back sorted: closed before in-progress.
	require.Len(t, data.Requests, 2)
	assert.Equal(t, uint64(2), data.Requests[0].ID)

	require.Len(t, data.StatusBreakdown, 2)
	require.Len(t, data.TeamPerformance, 1)
	assert.Equal(t, 1, data.TeamPerformance[0].Completed)
}

func TestBuildDailyUsesSingleDayPeriod(t *testing.T) {
	repo := &fakeRequestRepo{}
	logRepo := &fakeLogRepo{}
	svc := NewReportService(repo, logRepo, zap.NewNop())

	data, err := svc.BuildDaily(context.Background(), time.Date(2024, time.March, 5, 16, 45, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.March, 5), data.PeriodFrom)
	assert.Equal(t, data.PeriodFrom, data.PeriodTo)
	assert.Equal(t, 50, logRepo.lastLimit)
	assert.Nil(t, data.StatusBreakdown)
	assert.Nil(t, data.ProjectTypes)
}

func TestBuildMonthlyAddsBreakdowns(t *testing.T) {
	repo := &fakeRequestRepo{
		period: []entities.Request{
			{ProjectType: "Security", Department: null.StringFrom("Sales"), DurationDays: 3},
		},
	}
	logRepo := &fakeLogRepo{}
	svc := NewReportService(repo, logRepo, zap.NewNop())

	data, err := svc.BuildMonthly(context.Background(), 2024, time.February)
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.February, 1), data.PeriodFrom)
	assert.Equal(t, day(2024, time.February, 29), data.PeriodTo)
	assert.Equal(t, 200, logRepo.lastLimit)
	require.Len(t, data.ProjectTypes, 1)
	require.Len(t, data.Departments, 1)
}
