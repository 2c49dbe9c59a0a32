package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/entities"
	"sales-request-system/pkg/constants"
)

func strPtr(s string) *string       { return &s }
func intPtr(n int) *int             { return &n }
func floatPtr(f float64) *float64   { return &f }
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseRequest() entities.Request {
	return entities.Request{
		ID:                  1,
		CustomID:            "GBB_SDA_0124_IS_001",
		CustomerName:        "Acme Ltd",
		Description:         "New internet link",
		ServiceType:         constants.ServiceInternet,
		Status:              constants.StatusInProgress,
		DateRequestReceived: day(2024, time.January, 1), // Monday
		DurationDays:        1,
		TeamMemberInvolved:  "John Doe",
	}
}

func TestApplyPatchRecordsChangedFields(t *testing.T) {
	now := day(2024, time.January, 3)

	merged, changes, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		CustomerName: strPtr("Beta Corp"),
		Status:       strPtr(constants.StatusPendingReview),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "Beta Corp", merged.CustomerName)
	assert.Equal(t, constants.StatusPendingReview, merged.Status)

	require.Len(t, changes, 2)
	assert.Equal(t, "customer_name", changes[0].Field)
	assert.Equal(t, "Changed Customer Name from 'Acme Ltd' to 'Beta Corp'", changes[0].Action())
	assert.Equal(t, "status", changes[1].Field)
}

func TestApplyPatchSkipsUnchangedValues(t *testing.T) {
	now := day(2024, time.January, 3)

	_, changes, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		CustomerName: strPtr("Acme Ltd"),
	}, now)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestApplyPatchNilFieldsKeepCurrentValues(t *testing.T) {
	now := day(2024, time.January, 3)
	current := baseRequest()
	current.BoqCost = null.Float64From(1500)

	merged, changes, err := applyPatch(current, dto.UpdateRequestDTO{}, now)
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Equal(t, current, merged)
}

func TestApplyPatchNullableOldValuesRecordedAsEmpty(t *testing.T) {
	now := day(2024, time.January, 3)

	_, changes, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		BoqCost:    floatPtr(2500.5),
		TargetDays: intPtr(5),
	}, now)
	require.NoError(t, err)

	require.Len(t, changes, 2)
	assert.Equal(t, "", changes[0].Old)
	assert.Equal(t, "2500.5", changes[0].New)
	assert.Equal(t, "", changes[1].Old)
	assert.Equal(t, "5", changes[1].New)
}

func TestApplyPatchClosingStampsSentOutDate(t *testing.T) {
	// Wednesday; request received on Monday.
	now := time.Date(2024, time.January, 3, 14, 30, 0, 0, time.UTC)

	merged, changes, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		Status: strPtr(constants.StatusClosed),
	}, now)
	require.NoError(t, err)

	require.True(t, merged.SentOutDate.Valid)
	assert.Equal(t, day(2024, time.January, 3), merged.SentOutDate.Time)
	assert.Equal(t, 3, merged.DurationDays) // Mon, Tue, Wed

	// Both the status flip and the implicit stamp are logged.
	fields := []string{changes[0].Field, changes[1].Field}
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "sent_out_date")
}

func TestApplyPatchClosingWithExplicitDateUsesIt(t *testing.T) {
	now := day(2024, time.January, 10)

	merged, _, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		Status:      strPtr(constants.StatusClosed),
		SentOutDate: strPtr("2024-01-05"),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.January, 5), merged.SentOutDate.Time)
	assert.Equal(t, 5, merged.DurationDays) // Mon..Fri
}

func TestApplyPatchReClosingRestampsSentOutDate(t *testing.T) {
	// Wednesday; a date from an earlier close is still stored.
	now := day(2024, time.January, 10)
	current := baseRequest()
	current.SentOutDate = null.TimeFrom(day(2024, time.January, 2))

	merged, changes, err := applyPatch(current, dto.UpdateRequestDTO{
		Status: strPtr(constants.StatusClosed),
	}, now)
	require.NoError(t, err)

	// Closing without an explicit date always stamps today, never the stale
	// date, and the duration is frozen against the new stamp.
	assert.Equal(t, day(2024, time.January, 10), merged.SentOutDate.Time)
	assert.Equal(t, 8, merged.DurationDays)

	require.Len(t, changes, 2)
	assert.Equal(t, "status", changes[0].Field)
	assert.Equal(t, "sent_out_date", changes[1].Field)
	assert.Equal(t, "2024-01-02", changes[1].Old)
	assert.Equal(t, "2024-01-10", changes[1].New)
}

func TestApplyPatchReceivedDateRecomputesDuration(t *testing.T) {
	// Friday; new received date is the same week's Wednesday.
	now := day(2024, time.January, 5)

	merged, _, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		DateRequestReceived: strPtr("2024-01-03"),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.DurationDays) // Wed, Thu, Fri
}

func TestApplyPatchRejectsBadDates(t *testing.T) {
	now := day(2024, time.January, 5)

	_, _, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		DateRequestReceived: strPtr("03/01/2024"),
	}, now)
	assert.Error(t, err)

	_, _, err = applyPatch(baseRequest(), dto.UpdateRequestDTO{
		SentOutDate: strPtr("not-a-date"),
	}, now)
	assert.Error(t, err)
}

func TestApplyPatchClosingBeforeReceivedFails(t *testing.T) {
	now := day(2024, time.January, 10)

	_, _, err := applyPatch(baseRequest(), dto.UpdateRequestDTO{
		Status:      strPtr(constants.StatusClosed),
		SentOutDate: strPtr("2023-12-20"),
	}, now)
	assert.Error(t, err)
}

func TestProjectDuration(t *testing.T) {
	now := day(2024, time.January, 5) // Friday

	open := baseRequest()
	projectDuration(&open, now)
	assert.Equal(t, 5, open.DurationDays)

	closed := baseRequest()
	closed.Status = constants.StatusClosed
	closed.DurationDays = 2
	projectDuration(&closed, now)
	assert.Equal(t, 2, closed.DurationDays, "closed requests keep their frozen duration")
}
