package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/docstore/mock"
	"myhealth/rehab-api/internal/logging"
)

func TestDB_ViewSwallowsReadErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStore(ctrl)

	s.EXPECT().Read(gomock.Any(), docstore.Users).Return(nil, errors.New("disk on fire"))

	db := docstore.NewDB(s, logging.Discard())
	records := db.View(context.Background(), docstore.Users)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDB_UpdateReportsWriteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStore(ctrl)

	writeErr := errors.New("read-only file system")
	s.EXPECT().Read(gomock.Any(), docstore.Posts).Return([]json.RawMessage{}, nil)
	s.EXPECT().Write(gomock.Any(), docstore.Posts, gomock.Len(1)).Return(writeErr)

	db := docstore.NewDB(s, logging.Discard())
	err := db.Update(context.Background(), docstore.Posts, func(records []json.RawMessage) ([]json.RawMessage, error) {
		return append(records, json.RawMessage(`{"id":1}`)), nil
	})
	assert.ErrorIs(t, err, writeErr)
}

func TestDB_UpdateSkipsWriteWhenFnFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStore(ctrl)

	// No Write expectation: gomock fails the test if one happens.
	s.EXPECT().Read(gomock.Any(), docstore.Comments).Return([]json.RawMessage{}, nil)

	db := docstore.NewDB(s, logging.Discard())
	sentinel := errors.New("no such record")
	err := db.Update(context.Background(), docstore.Comments, func([]json.RawMessage) ([]json.RawMessage, error) {
		return nil, sentinel
	})
	assert.Equal(t, sentinel, err)
}

func TestDB_CorruptFileReadsEmptyAndIsReplacedOnWrite(t *testing.T) {
	fs, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fs.Path(docstore.Exercises), []byte("not json"), 0o644))

	db := docstore.NewDB(fs, logging.Discard())
	ctx := context.Background()
	assert.Empty(t, db.View(ctx, docstore.Exercises))

	require.NoError(t, db.Update(ctx, docstore.Exercises, func(records []json.RawMessage) ([]json.RawMessage, error) {
		return append(records, json.RawMessage(`{"id":1}`)), nil
	}))
	assert.Len(t, db.View(ctx, docstore.Exercises), 1)
}

func TestDB_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	fs, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	db := docstore.NewDB(fs, logging.Discard())
	ctx := context.Background()

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := db.Update(ctx, docstore.TrainingRecords, func(records []json.RawMessage) ([]json.RawMessage, error) {
				return append(records, json.RawMessage(fmt.Sprintf(`{"id":%d}`, i+1))), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, db.View(ctx, docstore.TrainingRecords), writers)
}

func TestDB_ViewNeverSeesHalfWrittenCollection(t *testing.T) {
	fs, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	db := docstore.NewDB(fs, logging.Discard())
	ctx := context.Background()

	const seeded = 200
	require.NoError(t, db.Update(ctx, docstore.Users, func(records []json.RawMessage) ([]json.RawMessage, error) {
		for i := 1; i <= seeded; i++ {
			records = append(records, json.RawMessage(fmt.Sprintf(`{"id":%d,"username":"user%d"}`, i, i)))
		}
		return records, nil
	}))

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			err := db.Update(ctx, docstore.Users, func(records []json.RawMessage) ([]json.RawMessage, error) {
				return records, nil
			})
			assert.NoError(t, err)
		}
	}()

	short := 0
	for i := 0; i < 2000; i++ {
		if len(db.View(ctx, docstore.Users)) != seeded {
			short++
		}
	}
	close(done)
	wg.Wait()

	assert.Zero(t, short, "views that did not see the full users collection")
}

func TestFileStore_ReadsCompleteFileWithoutDBLock(t *testing.T) {
	fs, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	records := make([]json.RawMessage, 0, 100)
	for i := 1; i <= 100; i++ {
		records = append(records, json.RawMessage(fmt.Sprintf(`{"id":%d}`, i)))
	}
	require.NoError(t, fs.Write(ctx, docstore.Posts, records))

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			assert.NoError(t, fs.Write(ctx, docstore.Posts, records))
		}
	}()

	for i := 0; i < 500; i++ {
		got, err := fs.Read(ctx, docstore.Posts)
		if !assert.NoError(t, err) || !assert.Len(t, got, 100) {
			break
		}
	}
	close(done)
	wg.Wait()

	entries, err := os.ReadDir(filepath.Dir(fs.Path(docstore.Posts)))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}
