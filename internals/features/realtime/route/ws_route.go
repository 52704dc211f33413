package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"almanar_backend/internals/collections"
	realtimeController "almanar_backend/internals/features/realtime/controller"
)

func RealtimeRoutes(app *fiber.App, reg *collections.Registry) {
	ctrl := realtimeController.NewWSController(reg)

	app.Get("/api/ws/:collection", ctrl.Upgrade, websocket.New(ctrl.Stream))
}
