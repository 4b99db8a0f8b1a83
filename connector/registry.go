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

package connector

import (
	"sort"
	"sync"

	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/environment"
)

// Factory creates a new instance of a connector.
type Factory func(env *environment.Environment) (Connector, error)

// Sentinel errors returned by the registry functions.
const (
	UnknownConnector    = "connector: unknown connector: %s"
	DuplicateConnector  = "connector: connector already registered: %s"
	ConnectorCreateFail = "connector: %s: %v"
)

var registry struct {
	crit      sync.Mutex
	factories map[string]Factory
}

// Register a connector factory by name. Adapters should call Register() in
// their package init() function.
func Register(name string, f Factory) error {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if registry.factories == nil {
		registry.factories = make(map[string]Factory)
	}
	if _, ok := registry.factories[name]; ok {
		return curated.Errorf(DuplicateConnector, name)
	}
	registry.factories[name] = f

	return nil
}

// Create a new connector instance by name.
func Create(name string, env *environment.Environment) (Connector, error) {
	registry.crit.Lock()
	f, ok := registry.factories[name]
	registry.crit.Unlock()

	if !ok {
		return nil, curated.Errorf(UnknownConnector, name)
	}

	c, err := f(env)
	if err != nil {
		return nil, curated.Errorf(ConnectorCreateFail, name, err)
	}

	return c, nil
}

// Names returns the names of every registered connector in alphabetical
// order.
func Names() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	n := make([]string, 0, len(registry.factories))
	for k := range registry.factories {
		n = append(n, k)
	}
	sort.Strings(n)

	return n
}
