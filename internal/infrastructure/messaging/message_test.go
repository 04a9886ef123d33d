package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePayloadRoundTrip(t *testing.T) {
	msg, err := NewMessage("job-1", MsgTypeInsightRefresh, "user-1", "tech", &InsightRefreshMessage{
		JobID:    "job-1",
		Industry: "tech",
		Trigger:  "manual",
	})
	require.NoError(t, err)

	msg.SetMetadata("trigger", "manual")
	assert.Equal(t, "manual", msg.GetMetadata("trigger"))
	assert.Equal(t, "", msg.GetMetadata("missing"))

	var payload InsightRefreshMessage
	require.NoError(t, msg.UnmarshalPayload(&payload))
	assert.Equal(t, "tech", payload.Industry)
	assert.Equal(t, "manual", payload.Trigger)
}

func TestStreamDLQ(t *testing.T) {
	assert.Equal(t, "dlq:senai:insight:jobs", StreamInsightRefresh.DLQStream())
}

func TestCalculateBackoff(t *testing.T) {
	cfg := DefaultBackoffConfig()

	assert.Equal(t, time.Second, cfg.CalculateBackoff(0))
	assert.Equal(t, 2*time.Second, cfg.CalculateBackoff(1))
	assert.Equal(t, 8*time.Second, cfg.CalculateBackoff(3))
	// 超过上限后封顶
	assert.Equal(t, time.Minute, cfg.CalculateBackoff(10))
}
