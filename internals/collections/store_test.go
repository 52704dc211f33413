package collections

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type note struct {
	NoteID     uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey" json:"note_id"`
	NoteTitle  string    `gorm:"column:note_title;type:varchar(100)" json:"note_title"`
	NoteStatus string    `gorm:"column:note_status;type:varchar(20)" json:"note_status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (note) TableName() string { return "notes" }

func (n note) GetID() uuid.UUID { return n.NoteID }

func (n *note) BeforeCreate(tx *gorm.DB) error {
	if n.NoteID == uuid.Nil {
		n.NoteID = uuid.New()
	}
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise each conn gets its own :memory: database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func newNoteStore(t *testing.T) *Store[note] {
	t.Helper()
	return NewStore[note](newTestDB(t), "notes", "note_id")
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	before := time.Now()
	n := note{NoteTitle: "first", NoteStatus: "draft"}
	id, err := store.Create(ctx, &n)
	require.NoError(t, err)
	after := time.Now()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, n.NoteID)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.NoteTitle)
	assert.Equal(t, "draft", got.NoteStatus)
	// the server assigned both timestamps during the write
	assert.WithinRange(t, got.CreatedAt, before, after)
	assert.WithinRange(t, got.UpdatedAt, before, after)
}

func TestSnapshotOrderNewestFirst(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	old := note{NoteTitle: "old", CreatedAt: base}
	mid := note{NoteTitle: "mid", CreatedAt: base.Add(time.Hour)}
	newest := note{NoteTitle: "newest", CreatedAt: base.Add(2 * time.Hour)}
	for _, n := range []*note{&old, &mid, &newest} {
		_, err := store.Create(ctx, n)
		require.NoError(t, err)
	}

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 3)
	assert.Equal(t, "newest", snap[0].NoteTitle)
	assert.Equal(t, "mid", snap[1].NoteTitle)
	assert.Equal(t, "old", snap[2].NoteTitle)
}

func TestSnapshotOrderTieBrokenByID(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lo := note{
		NoteID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		NoteTitle: "lo", CreatedAt: ts,
	}
	hi := note{
		NoteID:    uuid.MustParse("99999999-9999-9999-9999-999999999999"),
		NoteTitle: "hi", CreatedAt: ts,
	}
	for _, n := range []*note{&lo, &hi} {
		_, err := store.Create(ctx, n)
		require.NoError(t, err)
	}

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 2)
	assert.Equal(t, "hi", snap[0].NoteTitle)
	assert.Equal(t, "lo", snap[1].NoteTitle)
}

func TestSubscribeDeliversImmediatelyAndOnChange(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	seed := note{NoteTitle: "seed"}
	_, err := store.Create(ctx, &seed)
	require.NoError(t, err)

	var mu sync.Mutex
	var deliveries [][]note
	cancel, err := store.Subscribe(func(items []note) {
		mu.Lock()
		deliveries = append(deliveries, items)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer cancel()

	mu.Lock()
	require.Len(t, deliveries, 1, "initial snapshot must arrive on subscribe")
	assert.Len(t, deliveries[0], 1)
	mu.Unlock()

	second := note{NoteTitle: "second"}
	_, err = store.Create(ctx, &second)
	require.NoError(t, err)

	mu.Lock()
	require.Len(t, deliveries, 2)
	// the whole collection again, not a delta
	assert.Len(t, deliveries[1], 2)
	mu.Unlock()
}

func TestSubscribeConcurrentWithCreateNeverStale(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	// a create landing between the snapshot read and the callback
	// registration must still reach the subscriber, either via the initial
	// delivery or via the create's own broadcast
	for i := 0; i < 25; i++ {
		var mu sync.Mutex
		var last []note

		done := make(chan struct{})
		go func() {
			n := note{NoteTitle: "racer"}
			_, err := store.Create(ctx, &n)
			assert.NoError(t, err)
			close(done)
		}()

		cancel, err := store.Subscribe(func(items []note) {
			mu.Lock()
			last = items
			mu.Unlock()
		})
		require.NoError(t, err)
		<-done

		mu.Lock()
		assert.Len(t, last, i+1, "subscriber stale after create completed")
		mu.Unlock()
		cancel()
	}
}

func TestUpdateEmptyPatchBumpsUpdatedAtOnly(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	n := note{NoteTitle: "stable", NoteStatus: "draft"}
	id, err := store.Create(ctx, &n)
	require.NoError(t, err)

	before, err := store.Get(ctx, id)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.Update(ctx, id, map[string]any{}))

	after, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.NoteTitle, after.NoteTitle)
	assert.Equal(t, before.NoteStatus, after.NoteStatus)
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateStripsPrimaryKeyAndCreatedAt(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	n := note{NoteTitle: "locked"}
	id, err := store.Create(ctx, &n)
	require.NoError(t, err)

	before, err := store.Get(ctx, id)
	require.NoError(t, err)

	err = store.Update(ctx, id, map[string]any{
		"note_id":    uuid.New(),
		"created_at": time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		"note_title": "renamed",
	})
	require.NoError(t, err)

	after, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, after.NoteID)
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
	assert.Equal(t, "renamed", after.NoteTitle)
}

func TestUpdateAndDeleteUnknownID(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	err := store.Update(ctx, uuid.New(), map[string]any{"note_title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReachesEverySubscriber(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	n := note{NoteTitle: "doomed"}
	id, err := store.Create(ctx, &n)
	require.NoError(t, err)

	var mu sync.Mutex
	last := map[string][]note{}
	sub := func(key string) func([]note) {
		return func(items []note) {
			mu.Lock()
			last[key] = items
			mu.Unlock()
		}
	}
	cancelA, err := store.Subscribe(sub("a"))
	require.NoError(t, err)
	defer cancelA()
	cancelB, err := store.Subscribe(sub("b"))
	require.NoError(t, err)
	defer cancelB()

	require.NoError(t, store.Delete(ctx, id))

	mu.Lock()
	assert.Empty(t, last["a"])
	assert.Empty(t, last["b"])
	mu.Unlock()

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	var mu sync.Mutex
	count := 0
	cancel, err := store.Subscribe(func(items []note) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	require.NoError(t, err)

	cancel()
	cancel() // second call must be a no-op

	n := note{NoteTitle: "unseen"}
	_, err = store.Create(ctx, &n)
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, 1, count, "only the initial snapshot should have arrived")
	mu.Unlock()
}

func TestConcurrentUpdatesLastWriteWins(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	n := note{NoteTitle: "contested", NoteStatus: "pending"}
	id, err := store.Create(ctx, &n)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, status := range []string{"approved", "rejected"} {
		wg.Add(1)
		go func(st string) {
			defer wg.Done()
			_ = store.Update(ctx, id, map[string]any{"note_status": st})
		}(status)
	}
	wg.Wait()

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, []string{"approved", "rejected"}, got.NoteStatus)
}

func TestSubscribeJSONDeliversMarshaledSnapshot(t *testing.T) {
	store := newNoteStore(t)
	ctx := context.Background()

	n := note{NoteTitle: "wired"}
	_, err := store.Create(ctx, &n)
	require.NoError(t, err)

	var mu sync.Mutex
	var raw json.RawMessage
	cancel, err := store.SubscribeJSON(func(items json.RawMessage) {
		mu.Lock()
		raw = items
		mu.Unlock()
	})
	require.NoError(t, err)
	defer cancel()

	mu.Lock()
	assert.Contains(t, string(raw), `"note_title":"wired"`)
	mu.Unlock()
}
