package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIPIsConsistentAndShort(t *testing.T) {
	s := openTestStore(t)

	a := s.HashIP("203.0.113.7")
	b := s.HashIP("203.0.113.7")
	c := s.HashIP("203.0.113.8")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestRecordVisitAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, "203.0.113.7", "agent-a", "/"))
	require.NoError(t, s.RecordVisit(ctx, "203.0.113.7", "agent-a", "/projects"))
	require.NoError(t, s.RecordVisit(ctx, "203.0.113.8", "agent-b", "/"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.Len(t, stats.RecentVisitors, 3)
	for _, v := range stats.RecentVisitors {
		assert.NotContains(t, v.HashedIP, "203.0.113")
	}
}

func TestSaveMessageAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.SaveMessage(ctx, "Ada", "ada@example.com", "Hello", true)
	require.NoError(t, err)
	id2, err := s.SaveMessage(ctx, "Grace", "grace@example.com", "Hi", false)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	messages, err := s.RecentMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	byID := make(map[string]StoredMessage, len(messages))
	for _, m := range messages {
		byID[m.ID] = m
	}
	assert.Equal(t, "Ada", byID[id1].Name)
	assert.True(t, byID[id1].Relayed)
	assert.Equal(t, "grace@example.com", byID[id2].Email)
	assert.False(t, byID[id2].Relayed)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalMessages)
	assert.EqualValues(t, 1, stats.RelayedMessages)
}

func TestPurgeOldVisitors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, "203.0.113.7", "agent", "/"))

	old := time.Now().UTC().Add(-2 * 365 * 24 * time.Hour)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)`, "deadbeefdeadbeef", "agent", "/", old)
	require.NoError(t, err)

	deleted, err := s.PurgeOldVisitors(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}
