package docstore

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreRoundTrip checks the behaviour every backend shares.
func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	records, err := s.Read(ctx, Posts)
	require.NoError(t, err, "a collection never written reads as empty")
	assert.NotNil(t, records)
	assert.Empty(t, records)

	want := []json.RawMessage{
		json.RawMessage(`{"id":1,"content":"first","parentId":null}`),
		json.RawMessage(`{"id":2,"content":"二","tags":["knee"]}`),
	}
	require.NoError(t, s.Write(ctx, Posts, want))

	got, err := s.Read(ctx, Posts)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.JSONEq(t, string(want[i]), string(got[i]))
	}

	require.NoError(t, s.Write(ctx, Posts, nil))
	got, err = s.Read(ctx, Posts)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Collections do not share storage.
	require.NoError(t, s.Write(ctx, Comments, want[:1]))
	got, err = s.Read(ctx, Posts)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_Contract(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestFileStore_Contract(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	testStoreRoundTrip(t, s)
}

func TestRedisStore_Contract(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	s, err := ConnectRedis(ctx, RedisOptions{Addr: addr, Prefix: "rehab-test-" + uuid.NewString() + ":"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.client.Del(context.Background(), s.key(Posts), s.key(Comments)).Err()
		_ = s.Close(context.Background())
	})

	testStoreRoundTrip(t, s)

	// A key holding something other than a JSON array is an error, not data.
	require.NoError(t, s.client.Set(ctx, s.key(Posts), "not json", 0).Err())
	_, err = s.Read(ctx, Posts)
	assert.Error(t, err)
}

func TestMongoStore_Contract(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	database := "rehab_test_" + uuid.NewString()[:8]
	s, err := ConnectMongo(uri, database)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.collection.Database().Drop(context.Background())
		_ = s.Close(context.Background())
	})

	testStoreRoundTrip(t, s)
}
