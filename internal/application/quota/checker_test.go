package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senai-coach-api/internal/domain/entity"
)

type fakeUsageRepo struct {
	count     int64
	countErr  error
	since     time.Time
	recorded  []*entity.UsageEvent
	recordErr error
}

func (f *fakeUsageRepo) Record(_ context.Context, event *entity.UsageEvent) error {
	f.recorded = append(f.recorded, event)
	return f.recordErr
}

func (f *fakeUsageRepo) CountByUserSince(_ context.Context, _ string, since time.Time) (int64, error) {
	f.since = since
	return f.count, f.countErr
}

func TestCheckDailyUnderLimit(t *testing.T) {
	repo := &fakeUsageRepo{count: 3}
	checker := NewCallQuotaChecker(repo, true, 50)

	used, max, err := checker.CheckDaily(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)
	assert.Equal(t, 50, max)
}

func TestCheckDailyExceeded(t *testing.T) {
	repo := &fakeUsageRepo{count: 50}
	checker := NewCallQuotaChecker(repo, true, 50)

	used, max, err := checker.CheckDaily(context.Background(), "u-1")
	require.Error(t, err)
	assert.Equal(t, int64(50), used)
	assert.Equal(t, 50, max)

	var quotaErr CallQuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, "u-1", quotaErr.UserID)
}

func TestCheckDailyDisabled(t *testing.T) {
	repo := &fakeUsageRepo{count: 999}
	checker := NewCallQuotaChecker(repo, false, 50)

	_, _, err := checker.CheckDaily(context.Background(), "u-1")
	assert.NoError(t, err)
}

func TestCheckDailyWindowStartsAtUTCMidnight(t *testing.T) {
	repo := &fakeUsageRepo{}
	checker := NewCallQuotaChecker(repo, true, 10)
	checker.now = func() time.Time {
		return time.Date(2026, 3, 1, 23, 45, 0, 0, time.UTC)
	}

	_, _, err := checker.CheckDaily(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.since)
}

func TestCheckDailyRepoError(t *testing.T) {
	repo := &fakeUsageRepo{countErr: errors.New("db down")}
	checker := NewCallQuotaChecker(repo, true, 10)

	_, _, err := checker.CheckDaily(context.Background(), "u-1")
	assert.Error(t, err)
}

func TestRecorderSkipsEmptyUser(t *testing.T) {
	repo := &fakeUsageRepo{}
	recorder := NewUsageRecorder(repo)

	recorder.Record(context.Background(), UsageInput{Kind: entity.KindQuiz})
	assert.Empty(t, repo.recorded)

	recorder.Record(context.Background(), UsageInput{UserID: "u-1", Kind: entity.KindQuiz, Model: "gemini-2.5-flash"})
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, entity.KindQuiz, repo.recorded[0].Kind)
}
