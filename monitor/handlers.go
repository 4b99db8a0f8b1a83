// This file is part of Chessbridge.
//
// Chessbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chessbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chessbridge.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func (m *Monitor) getStatus(c *fiber.Ctx) error {
	return c.JSON(m.currentStatus())
}

func (m *Monitor) getLog(c *fiber.Ctx) error {
	n := c.QueryInt("n", defaultLogLines)
	if n < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "n must not be negative",
		})
	}
	c.Type("txt", "utf-8")
	m.env.Log.Tail(c, n)
	return nil
}

// streamStatus sends the current status to the client followed by every new
// status until the client disconnects.
func (m *Monitor) streamStatus(c *websocket.Conn) {
	ch := m.subscribe()
	defer m.unsubscribe(ch)

	m.env.Log.Logf(m.env, "monitor", "websocket client connected: %s", c.RemoteAddr())
	defer m.env.Log.Logf(m.env, "monitor", "websocket client disconnected: %s", c.RemoteAddr())

	// messages from the client are not expected. reading is the only way of
	// noticing that the client has gone
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := c.WriteJSON(m.currentStatus()); err != nil {
		return
	}

	for {
		select {
		case <-gone:
			return
		case st, ok := <-ch:
			if !ok {
				return
			}
			if err := c.WriteJSON(st); err != nil {
				return
			}
		}
	}
}
