// 📁 internals/collections/store.go
package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity is the shape every managed document shares: a server-assigned uuid
// plus created_at/updated_at columns maintained by GORM.
type Entity interface {
	GetID() uuid.UUID
}

// Store is the live, write-through view over one named collection. The
// database is the sole source of truth: every subscriber holds a disposable
// copy that is fully replaced on each delivery, never merged.
//
// One Store per collection is created at route setup and shared between the
// REST controllers and the websocket feed, so a write from any admin reaches
// every open dashboard.
type Store[T Entity] struct {
	db   *gorm.DB
	name string
	pk   string

	mu   sync.RWMutex
	subs map[uint64]func([]T)
	next uint64
}

func NewStore[T Entity](db *gorm.DB, name, pkColumn string) *Store[T] {
	return &Store[T]{
		db:   db,
		name: name,
		pk:   pkColumn,
		subs: make(map[uint64]func([]T)),
	}
}

func (s *Store[T]) Name() string { return s.name }

// Snapshot loads the entire collection newest-first. Ties on created_at fall
// back to the primary key so the order is stable between deliveries.
func (s *Store[T]) Snapshot(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := s.db.WithContext(ctx).
		Table(s.name).
		Order(fmt.Sprintf("created_at DESC, %s DESC", s.pk)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads a single document by id.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var item T
	err := s.db.WithContext(ctx).
		Table(s.name).
		Where(s.pk+" = ?", id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrNotFound
	}
	return item, err
}

// Subscribe registers fn and invokes it once immediately with the current
// snapshot, then again after every mutation of the collection (from this
// process or, via the change listener, from other instances). The returned
// cancel func is idempotent and must be called when the owner goes away,
// otherwise delivery continues into a dead callback. fn must not call back
// into the store during the initial delivery.
func (s *Store[T]) Subscribe(fn func(items []T)) (func(), error) {
	// snapshot, registration and the initial delivery happen under the write
	// lock: a mutation committing in between would otherwise have broadcast
	// already, leaving this subscriber stale until the next mutation.
	// broadcast collects callbacks under the read lock, so it cannot deliver
	// a fresher snapshot before the initial one goes out.
	s.mu.Lock()
	snap, err := s.Snapshot(context.Background())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	fn(snap)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return cancel, nil
}

// Create writes a new document. The id and both timestamps are assigned
// during the write; the id is returned once the database acknowledges.
func (s *Store[T]) Create(ctx context.Context, item *T) (uuid.UUID, error) {
	if err := s.db.WithContext(ctx).Table(s.name).Create(item).Error; err != nil {
		return uuid.Nil, err
	}
	s.broadcast(ctx)
	return (*item).GetID(), nil
}

// Update merges patch (column name → value) into the existing document.
// Whole-document merge by column, last write wins: two concurrent updates to
// the same id race at the database and the later one sticks. updated_at moves
// on every call, including an empty patch. The id and created_at are never
// patchable.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	cols := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		cols[k] = v
	}
	delete(cols, s.pk)
	delete(cols, "created_at")
	cols["updated_at"] = time.Now().UTC()

	res := s.db.WithContext(ctx).
		Table(s.name).
		Where(s.pk+" = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.broadcast(ctx)
	return nil
}

// Delete removes the document permanently. No tombstone, no cascade into
// other collections; the entity disappears from every live subscription on
// the next delivery.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Table(s.name).
		Where(s.pk+" = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.broadcast(ctx)
	return nil
}

// SubscribeJSON adapts Subscribe for callers that only need the marshaled
// snapshot (the websocket feed). Satisfies the Collection interface.
func (s *Store[T]) SubscribeJSON(fn func(items json.RawMessage)) (func(), error) {
	return s.Subscribe(func(items []T) {
		b, err := json.Marshal(items)
		if err != nil {
			log.Printf("[ERROR] collections: marshal %q snapshot: %v", s.name, err)
			return
		}
		fn(b)
	})
}

// Refresh re-reads the collection and redelivers to all subscribers. Used by
// the NOTIFY listener when another process mutated the table.
func (s *Store[T]) Refresh() {
	s.broadcast(context.Background())
}

func (s *Store[T]) broadcast(ctx context.Context) {
	s.mu.RLock()
	n := len(s.subs)
	s.mu.RUnlock()
	if n == 0 {
		return
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		// subscribers keep their previous snapshot; the callback carries no
		// error channel
		log.Printf("[ERROR] collections: refresh %q failed: %v", s.name, err)
		return
	}

	s.mu.RLock()
	fns := make([]func([]T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}
