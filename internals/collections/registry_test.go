package collections

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollection struct {
	name      string
	refreshed int
}

func (f *fakeCollection) Name() string { return f.name }

func (f *fakeCollection) SubscribeJSON(fn func(json.RawMessage)) (func(), error) {
	fn(json.RawMessage(`[]`))
	return func() {}, nil
}

func (f *fakeCollection) Refresh() { f.refreshed++ }

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	events := &fakeCollection{name: "events"}
	reg.Register(events)

	got, ok := reg.Lookup("events")
	require.True(t, ok)
	assert.Equal(t, "events", got.Name())

	_, ok = reg.Lookup("unknown")
	assert.False(t, ok)
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&fakeCollection{name: "students"})
	reg.Register(&fakeCollection{name: "donations"})
	reg.Register(&fakeCollection{name: "events"})

	assert.Equal(t, []string{"donations", "events", "students"}, reg.Names())
}

func TestRegistryReRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	first := &fakeCollection{name: "events"}
	second := &fakeCollection{name: "events"}
	reg.Register(first)
	reg.Register(second)

	got, ok := reg.Lookup("events")
	require.True(t, ok)
	got.Refresh()
	assert.Equal(t, 0, first.refreshed)
	assert.Equal(t, 1, second.refreshed)
}
