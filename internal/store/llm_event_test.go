package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-batch", InputTokens: 100, OutputTokens: 300, LatencyMs: 1000, Success: true, RequestBody: "req", ResponseBody: "[]"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-batch", InputTokens: 120, OutputTokens: 0, LatencyMs: 3000, Success: false, ErrorMessage: "timeout"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "preview", InputTokens: 10, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}
}

func TestEventRepo_QueryNewestFirst(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)

	got, err := repo.QueryLLMEvents(context.Background(), LLMEventQuery{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "preview", got[0].Purpose)
	assert.True(t, got[0].ID > got[1].ID)
	assert.False(t, got[0].Timestamp.IsZero())

	limited, err := repo.QueryLLMEvents(context.Background(), LLMEventQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	batch, err := repo.QueryLLMEvents(context.Background(), LLMEventQuery{Purpose: "question-batch"})
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}

func TestEventRepo_Get(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, LLMEventQuery{})
	require.NoError(t, err)
	first := all[len(all)-1]

	got, err := repo.GetLLMEvent(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "req", got.RequestBody)
	assert.Equal(t, "[]", got.ResponseBody)
	assert.True(t, got.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_Usage(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsage{Key: "preview", Calls: 1, InputTokens: 10, OutputTokens: 20, AvgLatencyMs: 500}, byPurpose[0])
	assert.Equal(t, LLMUsage{Key: "question-batch", Calls: 2, InputTokens: 220, OutputTokens: 300, AvgLatencyMs: 2000}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Key)
	assert.Equal(t, "gpt-4o-mini", byModel[1].Key)
}
