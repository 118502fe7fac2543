package docstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_MissingCollectionIsEmpty(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	records, err := s.Read(context.Background(), Posts)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_WritesPrettyArray(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	records := []json.RawMessage{
		json.RawMessage(`{"id":1,"title":"a"}`),
		json.RawMessage(`{"id":2,"title":"b"}`),
	}
	require.NoError(t, s.Write(ctx, TrainingPlans, records))

	data, err := os.ReadFile(s.Path(TrainingPlans))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": 1,"), "got %s", data)

	back, err := s.Read(ctx, TrainingPlans)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.JSONEq(t, `{"id":2,"title":"b"}`, string(back[1]))
}

func TestFileStore_EmptyWriteIsArray(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), Comments, nil))
	data, err := os.ReadFile(s.Path(Comments))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileStore_CorruptFile(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path(Users), []byte(`[{"id":1,`), 0o644))

	_, err = s.Read(context.Background(), Users)
	assert.Error(t, err)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	records, err := s.Read(ctx, Users)
	require.NoError(t, err)
	assert.Empty(t, records)

	in := []json.RawMessage{json.RawMessage(`{"id":1}`)}
	require.NoError(t, s.Write(ctx, Users, in))

	// Mutating the caller's slice must not reach the store.
	in[0] = json.RawMessage(`{"id":99}`)

	out, err := s.Read(ctx, Users)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.JSONEq(t, `{"id":1}`, string(out[0]))
}
