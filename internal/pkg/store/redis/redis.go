// Package redis implements the document Store on Redis. Documents live as
// JSON values in one hash per collection; every mutation publishes the
// document id on the collection's change channel, and live queries
// re-evaluate against the hash on each notification.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/store"
)

// maxTxRetries bounds the optimistic WATCH retry loop for
// read-modify-write operations
const maxTxRetries = 5

// Store is a redis-backed store.Store implementation
type Store struct {
	client *goredis.Client
}

// New creates a redis-backed store around an established client
func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

func collectionKey(collection string) string {
	return fmt.Sprintf(constants.KeyDocCollection, collection)
}

func collectionChannel(collection string) string {
	return fmt.Sprintf(constants.ChannelDocCollection, collection)
}

// Create inserts a document
func (s *Store) Create(ctx context.Context, collection, id string, doc interface{}) error {
	rec, err := store.Encode(doc)
	if err != nil {
		return err
	}
	rec["id"] = id

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}

	created, err := s.client.HSetNX(ctx, collectionKey(collection), id, data).Result()
	if err != nil {
		return fmt.Errorf("store: create document: %w", err)
	}
	if !created {
		return store.ErrExists
	}

	s.publishChange(ctx, collection, id)
	return nil
}

// Get fetches a document by id
func (s *Store) Get(ctx context.Context, collection, id string) (store.Record, error) {
	data, err := s.client.HGet(ctx, collectionKey(collection), id).Result()
	if err == goredis.Nil {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get document: %w", err)
	}

	var rec store.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("store: unmarshal document: %w", err)
	}
	return rec, nil
}

// Update merges the named fields into an existing document using an
// optimistic WATCH transaction
func (s *Store) Update(ctx context.Context, collection, id string, fields store.Record) error {
	err := s.modify(ctx, collection, id, func(rec store.Record) error {
		for k, v := range fields {
			rec[k] = v
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publishChange(ctx, collection, id)
	return nil
}

// Delete removes a document
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	removed, err := s.client.HDel(ctx, collectionKey(collection), id).Result()
	if err != nil {
		return fmt.Errorf("store: delete document: %w", err)
	}
	if removed == 0 {
		return store.ErrNotFound
	}

	s.publishChange(ctx, collection, id)
	return nil
}

// ArrayAppend appends elements to an array field. Redis hashes have no
// native array append, so this is a read-modify-write guarded by WATCH,
// exactly the optimistic-token scheme the data model assumes.
func (s *Store) ArrayAppend(ctx context.Context, collection, id, field string, elems ...interface{}) error {
	err := s.modify(ctx, collection, id, func(rec store.Record) error {
		existing, _ := rec[field].([]interface{})
		arr := make([]interface{}, len(existing), len(existing)+len(elems))
		copy(arr, existing)
		arr = append(arr, elems...)
		rec[field] = arr
		return nil
	})
	if err != nil {
		return err
	}

	s.publishChange(ctx, collection, id)
	return nil
}

// Mutate applies fn to one document under WATCH; concurrent writers
// trigger a bounded retry
func (s *Store) Mutate(ctx context.Context, collection, id string, fn func(store.Record) error) error {
	if err := s.modify(ctx, collection, id, fn); err != nil {
		return err
	}
	s.publishChange(ctx, collection, id)
	return nil
}

// modify runs a read-modify-write cycle on one document under WATCH,
// retrying on concurrent writes
func (s *Store) modify(ctx context.Context, collection, id string, mutate func(store.Record) error) error {
	key := collectionKey(collection)

	txn := func(tx *goredis.Tx) error {
		data, err := tx.HGet(ctx, key, id).Result()
		if err == goredis.Nil {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("store: get document: %w", err)
		}

		var rec store.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return fmt.Errorf("store: unmarshal document: %w", err)
		}
		if err := mutate(rec); err != nil {
			return err
		}

		updated, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("store: marshal document: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, id, updated)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = s.client.Watch(ctx, txn, key)
		if err != goredis.TxFailedErr {
			return err
		}
	}
	return fmt.Errorf("store: update contention on %s/%s: %w", collection, id, err)
}

// Find runs a one-shot query over the whole collection hash
func (s *Store) Find(ctx context.Context, q store.Query) ([]store.Record, error) {
	entries, err := s.client.HGetAll(ctx, collectionKey(q.Collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("store: scan collection: %w", err)
	}

	var results []store.Record
	for id, data := range entries {
		var rec store.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			logger.Warn("Skipping undecodable document",
				logger.String("collection", q.Collection),
				logger.String("id", id),
				logger.Err(err))
			continue
		}
		if store.Matches(rec, q.Filters) {
			results = append(results, rec)
		}
	}
	store.SortByID(results)
	return results, nil
}

// Watch subscribes to the collection's change channel and re-runs the
// query on every notification. The pub/sub subscription is released when
// ctx is cancelled or Unsubscribe is called.
func (s *Store) Watch(ctx context.Context, q store.Query) (*store.Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	pubsub := s.client.Subscribe(watchCtx, collectionChannel(q.Collection))
	if _, err := pubsub.Receive(watchCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("store: subscribe to collection changes: %w", err)
	}

	updates := make(chan []store.Record)
	go s.runWatcher(watchCtx, q, pubsub, updates)

	return store.NewSubscription(updates, cancel), nil
}

func (s *Store) runWatcher(ctx context.Context, q store.Query, pubsub *goredis.PubSub, updates chan []store.Record) {
	defer func() {
		_ = pubsub.Close()
		close(updates)
	}()

	lastFingerprint := ""
	emit := func() bool {
		results, err := s.Find(ctx, q)
		if err != nil {
			logger.Warn("Live query refresh failed",
				logger.String("collection", q.Collection),
				logger.Err(err))
			return ctx.Err() == nil
		}

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

	if !emit() {
		return
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if !emit() {
				return
			}
		}
	}
}

func (s *Store) publishChange(ctx context.Context, collection, id string) {
	if err := s.client.Publish(ctx, collectionChannel(collection), id).Err(); err != nil {
		// Watchers will catch up on the next change; log and move on
		logger.Warn("Failed to publish collection change",
			logger.String("collection", collection),
			logger.String("id", id),
			logger.Err(err))
	}
}
