// Package store defines the generic persistence and notification
// abstraction used by the liveride and tracking services: JSON documents
// keyed by (collection, id), atomic array appends, and live queries that
// re-emit their full result set on every change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound indicates the document does not exist in the collection
	ErrNotFound = errors.New("store: document not found")

	// ErrExists indicates a document with the same id already exists
	ErrExists = errors.New("store: document already exists")
)

// Record is a decoded document. Every record carries its own "id" field.
type Record map[string]interface{}

// ID returns the document id, or "" when the record is malformed
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Op is a filter predicate operator
type Op string

const (
	// OpEq matches documents whose field equals the filter value
	OpEq Op = "eq"
	// OpIn matches documents whose string field is a member of the filter set
	OpIn Op = "in"
	// OpContains matches documents whose array field contains the filter value
	OpContains Op = "contains"
)

// Filter is a single field predicate
type Filter struct {
	Field  string
	Op     Op
	Value  interface{}
	Values []string
}

// Eq builds an equality filter
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// In builds a set-membership filter. An empty set matches nothing.
func In(field string, values ...string) Filter {
	return Filter{Field: field, Op: OpIn, Values: values}
}

// Contains builds an array-containment filter
func Contains(field string, value interface{}) Filter {
	return Filter{Field: field, Op: OpContains, Value: value}
}

// Query selects documents of one collection matching all filters
type Query struct {
	Collection string
	Filters    []Filter
}

// Subscription is a live query handle. Updates carries the current result
// set and every subsequent recomputed set; it is closed on Unsubscribe or
// when the watch context is cancelled.
type Subscription struct {
	updates chan []Record
	cancel  context.CancelFunc
}

// NewSubscription wires a subscription around an emission channel and a
// cancel function. Intended for Store implementations.
func NewSubscription(updates chan []Record, cancel context.CancelFunc) *Subscription {
	return &Subscription{updates: updates, cancel: cancel}
}

// Updates returns the emission channel
func (s *Subscription) Updates() <-chan []Record {
	return s.updates
}

// Unsubscribe stops the live query and releases its resources. Safe to
// call more than once.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

// Store is the persistence/notification collaborator boundary
type Store interface {
	// Create inserts a document; fails with ErrExists on id collision
	Create(ctx context.Context, collection, id string, doc interface{}) error

	// Get fetches a document by id; fails with ErrNotFound
	Get(ctx context.Context, collection, id string) (Record, error)

	// Update merges the named fields into an existing document
	Update(ctx context.Context, collection, id string, fields Record) error

	// Delete removes a document; deleting a missing document is an error
	Delete(ctx context.Context, collection, id string) error

	// ArrayAppend atomically appends elements to an array field
	ArrayAppend(ctx context.Context, collection, id, field string, elems ...interface{}) error

	// Mutate applies fn to the document under optimistic concurrency
	// control; the whole mutation is applied or none of it is. An error
	// returned by fn aborts the mutation and is returned unwrapped.
	Mutate(ctx context.Context, collection, id string, fn func(Record) error) error

	// Find runs a one-shot query, results ordered by id
	Find(ctx context.Context, q Query) ([]Record, error)

	// Watch runs a live query: the current result set is emitted first,
	// then the full recomputed set after every collection change
	Watch(ctx context.Context, q Query) (*Subscription, error)
}

// Encode converts a typed document into a Record via its JSON form
func Encode(doc interface{}) (Record, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("store: encode document: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("store: encode document: %w", err)
	}
	return rec, nil
}

// Decode converts a Record back into a typed document via its JSON form
func Decode(rec Record, out interface{}) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: decode record: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: decode record: %w", err)
	}
	return nil
}

// Matches evaluates all query filters against a record
func Matches(rec Record, filters []Filter) bool {
	for _, f := range filters {
		if !matchOne(rec, f) {
			return false
		}
	}
	return true
}

func matchOne(rec Record, f Filter) bool {
	val, ok := rec[f.Field]
	if !ok {
		return false
	}

	switch f.Op {
	case OpEq:
		return jsonEqual(val, f.Value)
	case OpIn:
		s, ok := val.(string)
		if !ok {
			return false
		}
		for _, candidate := range f.Values {
			if s == candidate {
				return true
			}
		}
		return false
	case OpContains:
		arr, ok := val.([]interface{})
		if !ok {
			return false
		}
		for _, elem := range arr {
			if jsonEqual(elem, f.Value) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// jsonEqual compares two values by their canonical JSON encoding, which
// sidesteps the float64/int mismatch of decoded documents.
func jsonEqual(a, b interface{}) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}

// SortByID orders a result set deterministically
func SortByID(recs []Record) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID() < recs[j].ID() })
}

// Fingerprint summarises a result set so watchers can skip emitting
// unchanged results
func Fingerprint(recs []Record) string {
	data, err := json.Marshal(recs)
	if err != nil {
		return ""
	}
	return string(data)
}
