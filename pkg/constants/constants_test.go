package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSortOrder(t *testing.T) {
	assert.Equal(t, 1, StatusSortOrder(StatusClosed))
	assert.Equal(t, 2, StatusSortOrder(StatusPendingPresales))
	assert.Equal(t, 3, StatusSortOrder(StatusPendingReview))
	assert.Equal(t, 4, StatusSortOrder(StatusPendingApproval))
	assert.Equal(t, 5, StatusSortOrder(StatusInProgress))
	assert.Equal(t, 999, StatusSortOrder("Retired Status"))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("Done"))
	assert.False(t, IsValidStatus(""))
}

func TestServiceSlug(t *testing.T) {
	assert.Equal(t, "CS", ServiceSlug(ServiceCollocation))
	assert.Equal(t, "IS", ServiceSlug(ServiceInternet))
	assert.Equal(t, "DM", ServiceSlug(ServiceEDMS))
	assert.Equal(t, FallbackServiceSlug, ServiceSlug("Unmapped Offering"))
}

func TestServiceSlugsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, serviceType := range ServiceTypes {
		slug := ServiceSlug(serviceType)
		prev, dup := seen[slug]
		assert.False(t, dup, "slug %s shared by %q and %q", slug, prev, serviceType)
		seen[slug] = serviceType
	}
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "BM Name", FieldLabel("requester_name"))
	assert.Equal(t, "BOQ Cost", FieldLabel("boq_cost"))

	// Unmapped fields fall back to the column name.
	assert.Equal(t, "some_new_field", FieldLabel("some_new_field"))
}
