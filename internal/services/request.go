package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/entities"
	"sales-request-system/internal/repositories"
	"sales-request-system/pkg/constants"
	apperrors "sales-request-system/pkg/errors"
	"sales-request-system/pkg/utils"
	"sales-request-system/pkg/workdays"
)

type RequestServiceInterface interface {
	Create(ctx context.Context, data dto.CreateRequestDTO) (uint64, error)
	GetAll(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error)
	Find(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	Update(ctx context.Context, id uint64, data dto.UpdateRequestDTO) error
	Delete(ctx context.Context, id uint64) error
	GetLogs(ctx context.Context, requestID uint64) ([]dto.RequestLogDTO, error)
}

type RequestService struct {
	pool        *pgxpool.Pool
	requestRepo repositories.RequestRepositoryInterface
	logRepo     repositories.RequestLogRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	logger      *zap.Logger
}

func NewRequestService(
	pool *pgxpool.Pool,
	requestRepo repositories.RequestRepositoryInterface,
	logRepo repositories.RequestLogRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		pool:        pool,
		requestRepo: requestRepo,
		logRepo:     logRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *RequestService) Create(ctx context.Context, data dto.CreateRequestDTO) (uint64, error) {
	received, err := time.Parse("2006-01-02", data.DateRequestReceived)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("date_request_received must be YYYY-MM-DD")
	}

	serviceType := data.ServiceType
	if serviceType == "" {
		serviceType = constants.ServiceInternet
	}

	duration, err := workdays.BetweenNow(received)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("date_request_received cannot be in the future")
	}

	req := &entities.Request{
		CustomerName:        data.CustomerName,
		Description:         data.Description,
		ProjectType:         data.ProjectType,
		ServiceType:         serviceType,
		Status:              constants.StatusInProgress,
		BoqCost:             null.Float64FromPtr(data.BoqCost),
		RequesterName:       null.StringFromPtr(data.RequesterName),
		Department:          null.StringFromPtr(data.Department),
		DateRequestReceived: received,
		TargetDays:          null.IntFromPtr(data.TargetDays),
		DurationDays:        duration,
		TeamMemberInvolved:  data.TeamMemberInvolved,
		Comment:             null.StringFromPtr(data.Comment),
	}

	return s.requestRepo.Create(ctx, req)
}

// projectDuration recomputes the live duration for a non-closed request.
// Closed requests keep their frozen value. The result is never written back.
func projectDuration(req *entities.Request, now time.Time) {
	if req.IsClosed() {
		return
	}
	if days, err := workdays.Between(req.DateRequestReceived, now); err == nil {
		req.DurationDays = days
	}
}

func (s *RequestService) GetAll(ctx context.Context, filter dto.RequestFilter) ([]dto.RequestDTO, error) {
	requests, err := s.requestRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]entities.Request, 0, len(requests))
	for i := range requests {
		projectDuration(&requests[i], now)
		if filter.OverdueOnly {
			if requests[i].IsClosed() || !requests[i].IsOverdue() {
				continue
			}
		}
		result = append(result, requests[i])
	}

	return dto.NewRequestDTOs(result), nil
}

func (s *RequestService) Find(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	projectDuration(req, time.Now())
	d := dto.NewRequestDTO(*req)
	return &d, nil
}

// fieldChange is one logged difference between the pre-update snapshot and
// the patch.
type fieldChange struct {
	Field string
	Old   string
	New   string
}

func (c fieldChange) Action() string {
	return fmt.Sprintf("Changed %s from '%s' to '%s'", constants.FieldLabel(c.Field), c.Old, c.New)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// applyPatch merges the patch into a copy of current and collects one change
// per supplied field whose value actually differs. Closing a request stamps
// the sent-out date (today whenever the caller did not supply one, even over
// a date left from an earlier close) and freezes the recomputed duration;
// touching the received date recomputes the duration against the close date
// or today. Derived fields never produce changes.
func applyPatch(current entities.Request, patch dto.UpdateRequestDTO, now time.Time) (entities.Request, []fieldChange, error) {
	merged := current
	changes := make([]fieldChange, 0)

	record := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, fieldChange{Field: field, Old: oldVal, New: newVal})
		}
	}

	if patch.CustomerName != nil {
		record("customer_name", merged.CustomerName, *patch.CustomerName)
		merged.CustomerName = *patch.CustomerName
	}
	if patch.Description != nil {
		record("description", merged.Description, *patch.Description)
		merged.Description = *patch.Description
	}
	if patch.ProjectType != nil {
		record("project_type", merged.ProjectType, *patch.ProjectType)
		merged.ProjectType = *patch.ProjectType
	}
	if patch.ServiceType != nil {
		record("service_type", merged.ServiceType, *patch.ServiceType)
		merged.ServiceType = *patch.ServiceType
	}
	if patch.Status != nil {
		record("status", merged.Status, *patch.Status)
		merged.Status = *patch.Status
	}
	if patch.BoqCost != nil {
		oldVal := ""
		if merged.BoqCost.Valid {
			oldVal = formatFloat(merged.BoqCost.Float64)
		}
		record("boq_cost", oldVal, formatFloat(*patch.BoqCost))
		merged.BoqCost = null.Float64From(*patch.BoqCost)
	}
	if patch.RequesterName != nil {
		record("requester_name", merged.RequesterName.String, *patch.RequesterName)
		merged.RequesterName = null.StringFrom(*patch.RequesterName)
	}
	if patch.Department != nil {
		record("department", merged.Department.String, *patch.Department)
		merged.Department = null.StringFrom(*patch.Department)
	}
	if patch.TargetDays != nil {
		oldVal := ""
		if merged.TargetDays.Valid {
			oldVal = strconv.Itoa(merged.TargetDays.Int)
		}
		record("target_days", oldVal, strconv.Itoa(*patch.TargetDays))
		merged.TargetDays = null.IntFrom(*patch.TargetDays)
	}
	if patch.TeamMemberInvolved != nil {
		record("team_member_involved", merged.TeamMemberInvolved, *patch.TeamMemberInvolved)
		merged.TeamMemberInvolved = *patch.TeamMemberInvolved
	}
	if patch.Comment != nil {
		record("comment", merged.Comment.String, *patch.Comment)
		merged.Comment = null.StringFrom(*patch.Comment)
	}

	receivedTouched := false
	if patch.DateRequestReceived != nil {
		received, err := time.Parse("2006-01-02", *patch.DateRequestReceived)
		if err != nil {
			return merged, nil, apperrors.NewInvalidInputError("date_request_received must be YYYY-MM-DD")
		}
		record("date_request_received", merged.DateRequestReceived.Format("2006-01-02"), *patch.DateRequestReceived)
		merged.DateRequestReceived = received
		receivedTouched = true
	}

	if patch.SentOutDate != nil {
		sent, err := time.Parse("2006-01-02", *patch.SentOutDate)
		if err != nil {
			return merged, nil, apperrors.NewInvalidInputError("sent_out_date must be YYYY-MM-DD")
		}
		oldVal := ""
		if merged.SentOutDate.Valid {
			oldVal = merged.SentOutDate.Time.Format("2006-01-02")
		}
		record("sent_out_date", oldVal, *patch.SentOutDate)
		merged.SentOutDate = null.TimeFrom(sent)
	}

	closing := patch.Status != nil && *patch.Status == constants.StatusClosed
	if closing && patch.SentOutDate == nil {
		// Moving into Closed Request without a close date stamps today,
		// replacing any date left over from an earlier close.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		oldVal := ""
		if merged.SentOutDate.Valid {
			oldVal = merged.SentOutDate.Time.Format("2006-01-02")
		}
		record("sent_out_date", oldVal, today.Format("2006-01-02"))
		merged.SentOutDate = null.TimeFrom(today)
	}

	if closing {
		// Freeze the duration at close time.
		days, err := workdays.Between(merged.DateRequestReceived, merged.SentOutDate.Time)
		if err != nil {
			return merged, nil, err
		}
		merged.DurationDays = days
	} else if receivedTouched {
		days, err := workdays.Between(merged.DateRequestReceived, now)
		if err != nil {
			return merged, nil, err
		}
		merged.DurationDays = days
	}

	return merged, changes, nil
}

func (s *RequestService) Update(ctx context.Context, id uint64, data dto.UpdateRequestDTO) error {
	var changes []fieldChange

	err := repositories.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		current, err := s.requestRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		merged, diff, err := applyPatch(*current, data, time.Now())
		if err != nil {
			return err
		}
		changes = diff

		return s.requestRepo.UpdateInTx(ctx, tx, &merged)
	})
	if err != nil {
		return err
	}

	s.writeChangeLogs(ctx, id, changes)
	return nil
}

// writeChangeLogs appends one activity entry per changed field when the
// actor is known. Logging is best-effort: a failed write never affects the
// committed update.
func (s *RequestService) writeChangeLogs(ctx context.Context, requestID uint64, changes []fieldChange) {
	if len(changes) == 0 {
		return
	}

	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return // anonymous/system update, nothing to attribute
	}
	actor, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("could not resolve actor for activity log", zap.Uint64("userID", userID), zap.Error(err))
		return
	}

	for _, change := range changes {
		entry := &entities.RequestLog{
			RequestID: requestID,
			UserID:    actor.ID,
			UserName:  actor.FullName,
			Action:    change.Action(),
			FieldName: null.StringFrom(change.Field),
			OldValue:  null.NewString(change.Old, change.Old != ""),
			NewValue:  null.NewString(change.New, change.New != ""),
		}
		if err := s.logRepo.Create(ctx, entry); err != nil {
			s.logger.Warn("failed to write activity log entry",
				zap.Uint64("requestID", requestID),
				zap.String("field", change.Field),
				zap.Error(err),
			)
		}
	}
}

func (s *RequestService) Delete(ctx context.Context, id uint64) error {
	// Administrative delete: not logged, log entries stay behind.
	return s.requestRepo.Delete(ctx, id)
}

func (s *RequestService) GetLogs(ctx context.Context, requestID uint64) ([]dto.RequestLogDTO, error) {
	logs, err := s.logRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestLogDTOs(logs), nil
}
