// Package memory provides an in-process Store used by tests and local
// development. It mirrors the redis implementation's semantics: full
// result-set emissions, coalesced change notifications, unsubscribe via
// context cancellation.
package memory

import (
	"context"
	"sync"

	"github.com/paceline/paceline/internal/pkg/store"
)

type watcher struct {
	query  store.Query
	notify chan struct{}
}

// Store is an in-memory store.Store implementation
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]store.Record
	watchers    map[*watcher]struct{}
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		collections: make(map[string]map[string]store.Record),
		watchers:    make(map[*watcher]struct{}),
	}
}

// Create inserts a document
func (s *Store) Create(ctx context.Context, collection, id string, doc interface{}) error {
	rec, err := store.Encode(doc)
	if err != nil {
		return err
	}
	rec["id"] = id

	s.mu.Lock()
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]store.Record)
		s.collections[collection] = coll
	}
	if _, exists := coll[id]; exists {
		s.mu.Unlock()
		return store.ErrExists
	}
	coll[id] = rec
	s.mu.Unlock()

	s.notifyWatchers(collection)
	return nil
}

// Get fetches a document by id
func (s *Store) Get(ctx context.Context, collection, id string) (store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyRecord(rec), nil
}

// Update merges the named fields into an existing document
func (s *Store) Update(ctx context.Context, collection, id string, fields store.Record) error {
	s.mu.Lock()
	rec, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	for k, v := range fields {
		rec[k] = v
	}
	s.mu.Unlock()

	s.notifyWatchers(collection)
	return nil
}

// Delete removes a document
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	coll := s.collections[collection]
	if _, ok := coll[id]; !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	delete(coll, id)
	s.mu.Unlock()

	s.notifyWatchers(collection)
	return nil
}

// ArrayAppend appends elements to an array field under the store lock,
// which makes the append atomic with respect to concurrent readers
func (s *Store) ArrayAppend(ctx context.Context, collection, id, field string, elems ...interface{}) error {
	s.mu.Lock()
	rec, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}

	existing, _ := rec[field].([]interface{})
	arr := make([]interface{}, len(existing), len(existing)+len(elems))
	copy(arr, existing)
	for _, elem := range elems {
		encoded, err := store.Encode(struct {
			V interface{} `json:"v"`
		}{V: elem})
		if err != nil {
			s.mu.Unlock()
			return err
		}
		arr = append(arr, encoded["v"])
	}
	rec[field] = arr
	s.mu.Unlock()

	s.notifyWatchers(collection)
	return nil
}

// Mutate applies fn to a copy of the document under the store lock and
// swaps it in only when fn succeeds
func (s *Store) Mutate(ctx context.Context, collection, id string, fn func(store.Record) error) error {
	s.mu.Lock()
	rec, ok := s.collections[collection][id]
	if !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}

	dup := copyRecord(rec)
	if err := fn(dup); err != nil {
		s.mu.Unlock()
		return err
	}
	s.collections[collection][id] = dup
	s.mu.Unlock()

	s.notifyWatchers(collection)
	return nil
}

// Find runs a one-shot query
func (s *Store) Find(ctx context.Context, q store.Query) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(q), nil
}

func (s *Store) findLocked(q store.Query) []store.Record {
	var results []store.Record
	for _, rec := range s.collections[q.Collection] {
		if store.Matches(rec, q.Filters) {
			results = append(results, copyRecord(rec))
		}
	}
	store.SortByID(results)
	return results
}

// Watch runs a live query until ctx is cancelled or the subscription is
// unsubscribed
func (s *Store) Watch(ctx context.Context, q store.Query) (*store.Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	w := &watcher{
		query: q,
		// Buffered so a burst of mutations coalesces into one re-query
		notify: make(chan struct{}, 1),
	}

	s.mu.Lock()
	s.watchers[w] = struct{}{}
	s.mu.Unlock()

	updates := make(chan []store.Record)
	go s.runWatcher(watchCtx, w, updates)

	return store.NewSubscription(updates, cancel), nil
}

func (s *Store) runWatcher(ctx context.Context, w *watcher, updates chan []store.Record) {
	defer func() {
		s.mu.Lock()
		delete(s.watchers, w)
		s.mu.Unlock()
		close(updates)
	}()

	lastFingerprint := ""
	emit := func() bool {
		s.mu.RLock()
		results := s.findLocked(w.query)
		s.mu.RUnlock()

		fp := store.Fingerprint(results)
		if fp == lastFingerprint {
			return true
		}
		lastFingerprint = fp

		select {
		case updates <- results:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// Initial result set, then one recompute per change notification
	if !emit() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.notify:
			if !emit() {
				return
			}
		}
	}
}

func (s *Store) notifyWatchers(collection string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for w := range s.watchers {
		if w.query.Collection != collection {
			continue
		}
		select {
		case w.notify <- struct{}{}:
		default:
			// A pending notification already covers this change
		}
	}
}

func copyRecord(rec store.Record) store.Record {
	dup := make(store.Record, len(rec))
	for k, v := range rec {
		dup[k] = v
	}
	return dup
}
