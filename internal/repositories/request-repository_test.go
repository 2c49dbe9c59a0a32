package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sales-request-system/pkg/constants"
)

func TestCustomIDPrefix(t *testing.T) {
	march2025 := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "GBB_SDA_0325_CS_", customIDPrefix(constants.ServiceCollocation, march2025))
	assert.Equal(t, "GBB_SDA_0325_IS_", customIDPrefix(constants.ServiceInternet, march2025))

	// Unknown service types fall back to the generic slug.
	assert.Equal(t, "GBB_SDA_0325_OT_", customIDPrefix("Something Else", march2025))
}

func TestCustomIDPrefixYearRollover(t *testing.T) {
	dec := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)
	jan := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "GBB_SDA_1224_IS_", customIDPrefix(constants.ServiceInternet, dec))
	assert.Equal(t, "GBB_SDA_0125_IS_", customIDPrefix(constants.ServiceInternet, jan))
}

func TestNextSequence(t *testing.T) {
	assert.Equal(t, 1, nextSequence(""))
	assert.Equal(t, 2, nextSequence("GBB_SDA_0325_CS_001"))
	assert.Equal(t, 10, nextSequence("GBB_SDA_0325_CS_009"))
	assert.Equal(t, 100, nextSequence("GBB_SDA_0325_CS_099"))
	assert.Equal(t, 1000, nextSequence("GBB_SDA_0325_CS_999"))

	// Garbage suffixes restart the bucket instead of failing the insert.
	assert.Equal(t, 1, nextSequence("GBB_SDA_0325_CS_abc"))
}
