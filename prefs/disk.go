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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/chessbridge/curated"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. unexpected values may cause problems ***"

// KeySep separates the key and the value on every line of a prefs file.
const KeySep = " :: "

// Sentinel errors returned by the Disk type.
const (
	NotAPrefsFile = "prefs: not a valid prefs file (%s)"
	DuplicateKey  = "prefs: key already added to disk (%s)"
	DiskError     = "prefs: %v"
)

// Disk represents preference values as stored on disk. Only the values that
// have been added to a Disk instance are changed by Load() and Save(). Other
// entries in the file are preserved.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the file the Disk loads and saves.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference value to the disk. The key must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// Reset all values added to the disk to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk. A Disk with an empty path is never
// saved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if dsk.path == "" {
		return nil
	}

	// start with what's already in the file
	data, err := read(dsk.path)
	if err != nil && !curated.Has(err, NotAPrefsFile) {
		return err
	}
	if data == nil {
		data = make(map[string]string)
	}

	for key, p := range dsk.entries {
		data[key] = p.String()
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, key := range keys {
		fmt.Fprintf(w, "%s%s%s\n", key, KeySep, data[key])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. Values on
// the top of the command line stack override values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var data map[string]string
	if dsk.path != "" {
		var err error
		data, err = read(dsk.path)
		if err != nil {
			return err
		}
	}

	for key, v := range data {
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// read the key/value pairs in a prefs file. a missing file results in a nil
// map and no error.
func read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate
	if scanner.Scan() && len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefsFile, path)
	}

	data := make(map[string]string)
	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}

		data[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return data, nil
}
