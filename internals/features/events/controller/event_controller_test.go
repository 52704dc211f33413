package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/events/model"
)

func newEventApp(t *testing.T) (*fiber.App, *collections.Store[model.Event]) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Event{}))

	store := collections.NewStore[model.Event](db, "events", "event_id")
	ctrl := NewEventController(store)

	app := fiber.New()
	app.Get("/events", ctrl.GetAll)
	app.Get("/events/:id", ctrl.GetByID)
	app.Post("/events", ctrl.Create)
	app.Put("/events/:id", ctrl.Update)
	app.Delete("/events/:id", ctrl.Delete)
	return app, store
}

func seedEvent(t *testing.T, store *collections.Store[model.Event], title, sector, status string) model.Event {
	t.Helper()
	ev := model.Event{
		EventTitle:  title,
		EventDate:   "2026-09-10",
		EventSector: sector,
		EventStatus: status,
	}
	_, err := store.Create(context.Background(), &ev)
	require.NoError(t, err)
	return ev
}

type listEnvelope struct {
	Data       []model.Event  `json:"data"`
	Pagination map[string]any `json:"pagination"`
}

func getEvents(t *testing.T, app *fiber.App, target string) listEnvelope {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env listEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestEventGetAllSectorFilter(t *testing.T) {
	app, store := newEventApp(t)
	seedEvent(t, store, "Quran night", "qirat", model.EventStatusApproved)
	seedEvent(t, store, "Food drive", "charity", model.EventStatusApproved)
	seedEvent(t, store, "Iftar", "charity", model.EventStatusPending)

	env := getEvents(t, app, "/events?sector=charity")
	require.Len(t, env.Data, 2)
	for _, ev := range env.Data {
		assert.Equal(t, "charity", ev.EventSector)
	}

	// filtering must not shrink the underlying collection
	env = getEvents(t, app, "/events")
	assert.Len(t, env.Data, 3)
	assert.EqualValues(t, 3, env.Pagination["total"])

	env = getEvents(t, app, "/events?sector=charity&status=pending")
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Iftar", env.Data[0].EventTitle)
}

func TestEventCreateDefaultsToPending(t *testing.T) {
	app, store := newEventApp(t)

	payload := `{"title":"Study circle","date":"2026-10-01","sector":"academic"}`
	req := httptest.NewRequest("POST", "/events", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, model.EventStatusPending, snap[0].EventStatus)
	assert.NotEmpty(t, snap[0].EventID)
}

func TestEventCreateValidation(t *testing.T) {
	app, _ := newEventApp(t)

	// missing required date, bad sector
	payload := `{"title":"X","sector":"sports"}`
	req := httptest.NewRequest("POST", "/events", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Validation failed")
}

func TestEventUpdateAndDeleteByID(t *testing.T) {
	app, store := newEventApp(t)
	ev := seedEvent(t, store, "Renamable", "dawa", model.EventStatusPending)

	payload := `{"title":"Renamed event"}`
	req := httptest.NewRequest("PUT", "/events/"+ev.EventID.String(), bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := store.Get(context.Background(), ev.EventID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed event", got.EventTitle)
	assert.Equal(t, "dawa", got.EventSector)

	req = httptest.NewRequest("DELETE", "/events/"+ev.EventID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/events/"+ev.EventID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEventBadID(t *testing.T) {
	app, _ := newEventApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/events/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
