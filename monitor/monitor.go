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
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
	"github.com/jetsetilly/chessbridge/uci"
)

// MonitorError is the pattern for errors from the HTTP server.
const MonitorError = "monitor: %v"

// the default number of log lines returned by /api/log
const defaultLogLines = 20

// the number of statuses that can be waiting for a slow websocket client.
// statuses are dropped for clients that fall further behind
const clientQueueLength = 16

// Monitor implements the uci.Observer interface.
type Monitor struct {
	env *environment.Environment
	app *fiber.App

	crit    sync.Mutex
	status  uci.Status
	clients map[chan uci.Status]bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(env *environment.Environment) *Monitor {
	m := &Monitor{
		env: env,
		app: fiber.New(fiber.Config{
			AppName:               "chessbridge monitor",
			DisableStartupMessage: true,
		}),
		clients: make(map[chan uci.Status]bool),
	}

	api := m.app.Group("/api")
	api.Get("/status", m.getStatus)
	api.Get("/log", m.getLog)

	m.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	m.app.Get("/ws/status", websocket.New(m.streamStatus))

	return m
}

// App returns the underlying fiber application.
func (m *Monitor) App() *fiber.App {
	return m.app
}

// Listen for HTTP requests on the address. Does not return until Shutdown()
// is called or the server fails.
func (m *Monitor) Listen(addr string) error {
	m.env.Log.Logf(m.env, "monitor", "listening on %s", addr)
	if err := m.app.Listen(addr); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	return nil
}

// Serve HTTP requests from an existing listener. Does not return until
// Shutdown() is called or the server fails.
func (m *Monitor) Serve(ln net.Listener) error {
	m.env.Log.Logf(m.env, "monitor", "listening on %s", ln.Addr())
	if err := m.app.Listener(ln); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	return nil
}

// Shutdown the HTTP server. Connected websocket clients are disconnected.
func (m *Monitor) Shutdown() error {
	m.crit.Lock()
	for ch := range m.clients {
		close(ch)
		delete(m.clients, ch)
	}
	m.crit.Unlock()

	if err := m.app.Shutdown(); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	return nil
}

// UpdateStatus implements the uci.Observer interface.
func (m *Monitor) UpdateStatus(st uci.Status) {
	m.crit.Lock()
	defer m.crit.Unlock()

	m.status = st
	for ch := range m.clients {
		select {
		case ch <- st:
		default:
			m.env.Log.Log(m.env, "monitor", "dropped status for slow client")
		}
	}
}

func (m *Monitor) currentStatus() uci.Status {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.status
}

func (m *Monitor) subscribe() chan uci.Status {
	m.crit.Lock()
	defer m.crit.Unlock()
	ch := make(chan uci.Status, clientQueueLength)
	m.clients[ch] = true
	return ch
}

func (m *Monitor) unsubscribe(ch chan uci.Status) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if m.clients[ch] {
		close(ch)
		delete(m.clients, ch)
	}
}
