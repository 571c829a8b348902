package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/timezone"
)

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-01-01")
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-01", timezone.Format(parsed, "2006-01-02"))
}

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()
	assert.Equal(t, timezone.GetLocation().String(), now.Location().String())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	converted := timezone.ToAppTime(utc)
	assert.True(t, utc.Equal(converted))
}
