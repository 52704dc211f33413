// 📁 controller/ws_controller.go
package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"almanar_backend/internals/collections"
)

// snapshotBuffer bounds how many snapshots may queue for a slow client
// before the oldest is dropped. The client only ever needs the latest.
const snapshotBuffer = 8

type WSController struct {
	Registry *collections.Registry
}

func NewWSController(reg *collections.Registry) *WSController {
	return &WSController{Registry: reg}
}

// Upgrade rejects plain HTTP requests before the websocket handshake.
func (ctrl *WSController) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	name := c.Params("collection")
	if _, ok := ctrl.Registry.Lookup(name); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Unknown collection: "+name)
	}
	return c.Next()
}

type snapshotMessage struct {
	Collection string          `json:"collection"`
	Items      json.RawMessage `json:"items"`
}

// Stream pushes a full snapshot on connect and again after every change.
func (ctrl *WSController) Stream(conn *websocket.Conn) {
	name := conn.Params("collection")
	col, ok := ctrl.Registry.Lookup(name)
	if !ok {
		conn.Close()
		return
	}

	snapshots := make(chan json.RawMessage, snapshotBuffer)
	cancel, err := col.SubscribeJSON(func(items json.RawMessage) {
		for {
			select {
			case snapshots <- items:
				return
			default:
				// drop the oldest queued snapshot to make room
				select {
				case <-snapshots:
				default:
				}
			}
		}
	})
	if err != nil {
		log.Println("[WS] subscribe failed:", name, err)
		conn.Close()
		return
	}
	defer cancel()
	defer conn.Close()

	// reads are only used to detect the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case items := <-snapshots:
			msg := snapshotMessage{Collection: name, Items: items}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
