package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchStore(t *testing.T, paths ...string) (*RedisStore, *countingLoader) {
	t.Helper()

	s := &RedisStore{watchers: newWatchers()}
	t.Cleanup(s.watchers.closeAll)

	loader := &countingLoader{reads: make(map[string]int)}
	for _, path := range paths {
		_, err := s.watchers.add(context.Background(), path, loader.load, func(Snapshot, error) {})
		require.NoError(t, err)
		require.Eventually(t, func() bool { return loader.count(path) == 1 }, time.Second, 5*time.Millisecond)
	}

	return s, loader
}

func TestRedisStore_DispatchMessageWakesPath(t *testing.T) {
	s, loader := newDispatchStore(t, "teams/t1", "teams/t2")

	s.dispatch(&redis.Message{Channel: channelChanges, Payload: "teams/t1"})

	require.Eventually(t, func() bool { return loader.count("teams/t1") == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, loader.count("teams/t2"))
}

func TestRedisStore_DispatchResubscribeWakesAll(t *testing.T) {
	s, loader := newDispatchStore(t, "teams/t1", "users/u1")

	s.dispatch(&redis.Subscription{Kind: "subscribe", Channel: channelChanges, Count: 1})

	for _, path := range []string{"teams/t1", "users/u1"} {
		require.Eventually(t, func() bool { return loader.count(path) == 2 }, time.Second, 5*time.Millisecond, path)
	}
}

func TestRedisStore_DispatchUnsubscribeIgnored(t *testing.T) {
	s, loader := newDispatchStore(t, "teams/t1")

	s.dispatch(&redis.Subscription{Kind: "unsubscribe", Channel: channelChanges})
	s.dispatch(&redis.Pong{})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, loader.count("teams/t1"))
}
