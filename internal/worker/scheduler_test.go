package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/internal/infrastructure/messaging"
)

type fakePublisher struct {
	jobs []*messaging.InsightRefreshMessage
}

func (f *fakePublisher) PublishInsightRefresh(_ context.Context, job *messaging.InsightRefreshMessage) (string, error) {
	f.jobs = append(f.jobs, job)
	return "1-0", nil
}

type fakeUserRepo struct {
	repository.UserRepository
	industries []string
}

func (f *fakeUserRepo) DistinctIndustries(_ context.Context) ([]string, error) {
	return f.industries, nil
}

type fakeInsightRepo struct {
	repository.InsightRepository
	due      []*entity.IndustryInsight
	existing map[string]*entity.IndustryInsight
}

func (f *fakeInsightRepo) ListDue(_ context.Context, _ time.Time) ([]*entity.IndustryInsight, error) {
	return f.due, nil
}

func (f *fakeInsightRepo) GetByIndustry(_ context.Context, industry string) (*entity.IndustryInsight, error) {
	return f.existing[industry], nil
}

func TestSchedulerScanQueuesDueAndMissing(t *testing.T) {
	publisher := &fakePublisher{}
	users := &fakeUserRepo{industries: []string{"tech", "finance", ""}}
	insights := &fakeInsightRepo{
		due: []*entity.IndustryInsight{{Industry: "tech"}},
		existing: map[string]*entity.IndustryInsight{
			"tech": {Industry: "tech"},
		},
	}

	s := NewScheduler(users, insights, publisher, time.Hour)
	s.scan(context.Background())

	// tech 过期入队一次，finance 缺失入队一次，空行业跳过
	require.Len(t, publisher.jobs, 2)

	byIndustry := map[string]*messaging.InsightRefreshMessage{}
	for _, j := range publisher.jobs {
		byIndustry[j.Industry] = j
	}
	require.Contains(t, byIndustry, "tech")
	require.Contains(t, byIndustry, "finance")
	assert.Equal(t, "scheduled", byIndustry["tech"].Trigger)
	assert.NotEmpty(t, byIndustry["finance"].JobID)
}

func TestSchedulerScanSkipsFreshIndustries(t *testing.T) {
	publisher := &fakePublisher{}
	users := &fakeUserRepo{industries: []string{"tech"}}
	insights := &fakeInsightRepo{
		existing: map[string]*entity.IndustryInsight{
			"tech": {Industry: "tech", NextUpdate: time.Now().Add(24 * time.Hour)},
		},
	}

	s := NewScheduler(users, insights, publisher, time.Hour)
	s.scan(context.Background())

	assert.Empty(t, publisher.jobs)
}
