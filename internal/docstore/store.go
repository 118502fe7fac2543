// Package docstore persists whole collections of JSON records.
//
// A collection is read and written as one array. Backends only know how to load
// and replace that array; DB adds the per-collection locking that makes a
// read-modify-write cycle safe inside one process.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Collection names.
const (
	Users           = "users"
	TrainingPlans   = "training_plans"
	Exercises       = "exercises"
	TrainingRecords = "training_records"
	Posts           = "posts"
	Comments        = "comments"
)

// Collections lists every collection the application uses.
var Collections = []string{Users, TrainingPlans, Exercises, TrainingRecords, Posts, Comments}

//go:generate mockgen -destination=mock/store.go -package=mock myhealth/rehab-api/internal/docstore Store

// Store loads and replaces whole collections.
type Store interface {
	// Read returns the records of collection. A collection that was never
	// written yields an empty slice and no error.
	Read(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Write replaces the collection with records.
	Write(ctx context.Context, collection string, records []json.RawMessage) error
}

// Closer is implemented by backends holding connections.
type Closer interface {
	Close(ctx context.Context) error
}

// DB wraps a Store with per-collection read/write locks, logging and metrics.
type DB struct {
	store Store
	log   logrus.FieldLogger

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// NewDB returns a DB backed by store.
func NewDB(store Store, log logrus.FieldLogger) *DB {
	return &DB{
		store: store,
		log:   log,
		locks: make(map[string]*sync.RWMutex),
	}
}

// View returns the current records of collection. Read failures are logged
// and reported as an empty collection. A View never overlaps an Update of the
// same collection.
func (db *DB) View(ctx context.Context, collection string) []json.RawMessage {
	lock := db.lock(collection)
	lock.RLock()
	defer lock.RUnlock()
	return db.read(ctx, collection)
}

// Update runs fn over the records of collection while holding the
// collection's lock and writes back what fn returns. When fn fails nothing is
// written and its error is returned unchanged.
func (db *DB) Update(ctx context.Context, collection string, fn func(records []json.RawMessage) ([]json.RawMessage, error)) error {
	lock := db.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	records, err := fn(db.read(ctx, collection))
	if err != nil {
		return err
	}
	if records == nil {
		records = []json.RawMessage{}
	}

	start := time.Now()
	err = db.store.Write(ctx, collection, records)
	observe(collection, opWrite, start, err)
	if err != nil {
		db.log.WithError(err).WithField("collection", collection).Error("docstore: write failed")
		return fmt.Errorf("docstore: write %s: %w", collection, err)
	}
	return nil
}

// Close releases the backend's connections, if it has any.
func (db *DB) Close(ctx context.Context) error {
	if c, ok := db.store.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}

func (db *DB) read(ctx context.Context, collection string) []json.RawMessage {
	start := time.Now()
	records, err := db.store.Read(ctx, collection)
	observe(collection, opRead, start, err)
	if err != nil {
		db.log.WithError(err).WithField("collection", collection).Error("docstore: read failed, treating collection as empty")
		return []json.RawMessage{}
	}
	if records == nil {
		return []json.RawMessage{}
	}
	return records
}

func (db *DB) lock(collection string) *sync.RWMutex {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, ok := db.locks[collection]
	if !ok {
		l = &sync.RWMutex{}
		db.locks[collection] = l
	}
	return l
}
