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
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/chessbridge/curated"
	"github.com/jetsetilly/chessbridge/prefs"
)

// OptionType is the type of a declared option, as understood by the
// protocol client.
type OptionType string

// List of valid OptionType values.
const (
	Check  OptionType = "check"
	Spin   OptionType = "spin"
	Combo  OptionType = "combo"
	String OptionType = "string"
	Button OptionType = "button"
)

// Value is the interface to a preference value that an Option is bound to.
// The types in the prefs package satisfy this interface.
type Value interface {
	fmt.Stringer
	Set(value prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// Option is the declaration of a connector option. Declared options are
// reported to the protocol client in response to the uci command.
type Option struct {
	Name    string
	Type    OptionType
	Default string

	// Min and Max are only used for Spin options
	Min int
	Max int

	// the allowed values for a Combo option
	Vars []string

	// the preference value the option is bound to. Button options do not
	// need a value
	Value Value

	// called when a Button option is set
	Press func()
}

// Sentinel errors returned by the Options type.
const (
	DuplicateOption = "connector: duplicate option: %s"
	OptionError     = "connector: option %s: %v"
)

// Options is the set of options declared by an adapter. The values are
// persisted through the prefs package, with the key formed from the name of
// the adapter and the name of the option.
type Options struct {
	crit    sync.Mutex
	adapter string
	dsk     *prefs.Disk
	opts    []Option
}

// NewOptions is the preferred method of initialisation for the Options type.
// The disk argument can be nil, in which case option values are not
// persisted.
func NewOptions(adapter string, dsk *prefs.Disk) *Options {
	return &Options{
		adapter: adapter,
		dsk:     dsk,
	}
}

// Key returns the preferences key for the named option.
func (o *Options) Key(name string) string {
	return fmt.Sprintf("connector.%s.%s", o.adapter, strings.ToLower(strings.ReplaceAll(name, " ", "")))
}

// Add an option declaration. The option value is set to the declared default.
func (o *Options) Add(opt Option) error {
	o.crit.Lock()
	defer o.crit.Unlock()

	for _, e := range o.opts {
		if strings.EqualFold(e.Name, opt.Name) {
			return curated.Errorf(DuplicateOption, opt.Name)
		}
	}

	if opt.Value != nil {
		if opt.Default != "" {
			if err := opt.Value.Set(opt.Default); err != nil {
				return curated.Errorf(OptionError, opt.Name, err)
			}
		}
		if o.dsk != nil {
			if err := o.dsk.Add(o.Key(opt.Name), opt.Value); err != nil {
				return curated.Errorf(OptionError, opt.Name, err)
			}
		}
	}

	o.opts = append(o.opts, opt)

	return nil
}

// Load option values from the preferences disk. Values set on the command
// line take priority.
func (o *Options) Load() error {
	if o.dsk == nil {
		return nil
	}
	return o.dsk.Load()
}

// Set the named option. Names are not case sensitive. Returns false if the
// option does not exist or if the value is not allowed for the option.
func (o *Options) Set(name string, value string) bool {
	o.crit.Lock()

	var opt *Option
	for i := range o.opts {
		if strings.EqualFold(o.opts[i].Name, name) {
			opt = &o.opts[i]
			break
		}
	}

	if opt == nil {
		o.crit.Unlock()
		return false
	}

	// the option is copied so that the press function can be called without
	// holding the lock
	c := *opt
	o.crit.Unlock()

	return c.set(value)
}

func (opt Option) set(value string) bool {
	value = strings.TrimSpace(value)

	switch opt.Type {
	case Button:
		if opt.Press != nil {
			opt.Press()
		}
		return true

	case Check:
		switch strings.ToLower(value) {
		case "true", "false":
		default:
			return false
		}

	case Spin:
		v, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		if v < opt.Min || v > opt.Max {
			return false
		}

	case Combo:
		found := false
		for _, v := range opt.Vars {
			if strings.EqualFold(v, value) {
				value = v
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if opt.Value == nil {
		return false
	}

	return opt.Value.Set(value) == nil
}

// Get the current value of the named option as a string. Returns false if the
// option does not exist.
func (o *Options) Get(name string) (string, bool) {
	o.crit.Lock()
	defer o.crit.Unlock()

	for _, opt := range o.opts {
		if strings.EqualFold(opt.Name, name) {
			if opt.Value == nil {
				return "", true
			}
			return opt.Value.String(), true
		}
	}

	return "", false
}

// Declared returns a copy of the option declarations in the order they were
// added.
func (o *Options) Declared() []Option {
	o.crit.Lock()
	defer o.crit.Unlock()

	d := make([]Option, len(o.opts))
	copy(d, o.opts)

	return d
}
