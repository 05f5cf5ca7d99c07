package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordEventCounts(t *testing.T) {
	s := NewService()

	assert.Equal(t, int64(0), s.EventCount("alert_created"))

	s.RecordEvent("alert_created", map[string]string{"alert_id": "a1"})
	s.RecordEvent("alert_created", map[string]string{"alert_id": "a2"})
	s.RecordEvent("dashboard_refresh", nil)

	assert.Equal(t, int64(2), s.EventCount("alert_created"))
	assert.Equal(t, int64(1), s.EventCount("dashboard_refresh"))
	assert.Equal(t, int64(0), s.EventCount("unknown"))
}
