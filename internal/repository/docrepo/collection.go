// Package docrepo implements the repository interfaces on top of a docstore.DB.
//
// Every operation loads the whole collection. Lookups decode records lazily;
// updates merge the re-encoded record over the stored JSON object so fields
// this version of the code does not know about survive a write.
package docrepo

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/repository"
)

var now = func() time.Time { return time.Now().UTC() }

type idProbe struct {
	ID json.Number `json:"id"`
}

// probeID reads the id of a stored record. Ids written by hand as numeric
// strings or integral floats ("7", 2.0) count as the integer they spell.
func probeID(raw json.RawMessage) (int, bool) {
	var p idProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, false
	}
	if id, err := p.ID.Int64(); err == nil {
		return int(id), true
	}
	f, err := p.ID.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// nextID is one more than the largest id in records, or 1 when there is none.
// Ids that are not integers still raise the bound so a new id never collides.
func nextID(records []json.RawMessage, log logrus.FieldLogger) int {
	maxID := 0
	for _, raw := range records {
		if id, ok := probeID(raw); ok {
			maxID = max(maxID, id)
			continue
		}
		var p idProbe
		if err := json.Unmarshal(raw, &p); err != nil || p.ID == "" {
			log.WithField("record", string(raw)).Warn("record without a usable id")
			continue
		}
		log.WithField("id", p.ID.String()).Warn("record with a non-integer id")
		if f, err := p.ID.Float64(); err == nil {
			maxID = max(maxID, int(math.Ceil(f)))
		}
	}
	return maxID + 1
}

type collection[T any] struct {
	db   *docstore.DB
	name string
	log  logrus.FieldLogger
}

func newCollection[T any](db *docstore.DB, name string, log logrus.FieldLogger) collection[T] {
	return collection[T]{db: db, name: name, log: log.WithField("collection", name)}
}

func (c collection[T]) decode(raw json.RawMessage) (T, bool) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.WithError(err).Warn("skipping undecodable record")
		return v, false
	}
	return v, true
}

// filter returns the records accepted by keep, in stored order. A nil keep
// accepts everything.
func (c collection[T]) filter(ctx context.Context, keep func(*T) bool) []T {
	out := make([]T, 0)
	for _, raw := range c.db.View(ctx, c.name) {
		v, ok := c.decode(raw)
		if !ok {
			continue
		}
		if keep == nil || keep(&v) {
			out = append(out, v)
		}
	}
	return out
}

func (c collection[T]) all(ctx context.Context) []T {
	return c.filter(ctx, nil)
}

// first returns the first record accepted by match, or repository.ErrNotFound.
func (c collection[T]) first(ctx context.Context, match func(*T) bool) (*T, error) {
	for _, raw := range c.db.View(ctx, c.name) {
		v, ok := c.decode(raw)
		if ok && match(&v) {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c collection[T]) byID(ctx context.Context, id int) (*T, error) {
	for _, raw := range c.db.View(ctx, c.name) {
		if got, ok := probeID(raw); !ok || got != id {
			continue
		}
		v, ok := c.decode(raw)
		if !ok {
			return nil, repository.ErrNotFound
		}
		return &v, nil
	}
	return nil, repository.ErrNotFound
}

// insert assigns the next id through stamp, appends rec and persists the
// collection. When conflicts is set and accepts an existing record, nothing
// is written and repository.ErrConflict is returned.
func (c collection[T]) insert(ctx context.Context, rec *T, stamp func(id int), conflicts func(existing *T) bool) (int, error) {
	var id int
	err := c.db.Update(ctx, c.name, func(records []json.RawMessage) ([]json.RawMessage, error) {
		if conflicts != nil {
			for _, raw := range records {
				if v, ok := c.decode(raw); ok && conflicts(&v) {
					return nil, repository.ErrConflict
				}
			}
		}
		id = nextID(records, c.log)
		stamp(id)
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		return append(records, raw), nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// modify applies mutate to the record with the given id and persists it.
// An absent id yields repository.ErrNotFound without a write.
func (c collection[T]) modify(ctx context.Context, id int, mutate func(*T)) (*T, error) {
	var updated T
	err := c.db.Update(ctx, c.name, func(records []json.RawMessage) ([]json.RawMessage, error) {
		idx := -1
		for i, raw := range records {
			if got, ok := probeID(raw); ok && got == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, repository.ErrNotFound
		}

		if err := json.Unmarshal(records[idx], &updated); err != nil {
			return nil, err
		}
		mutate(&updated)

		merged, err := mergeObject(records[idx], updated)
		if err != nil {
			return nil, err
		}
		records[idx] = merged
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// mergeObject overlays the encoding of v on the stored JSON object.
func mergeObject(stored json.RawMessage, v any) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(stored, &fields); err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fresh map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fresh); err != nil {
		return nil, err
	}
	for k, val := range fresh {
		fields[k] = val
	}
	return json.Marshal(fields)
}
