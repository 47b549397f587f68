// This file is part of Mact.
//
// Mact is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mact is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mact.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jetsetilly/mact/curated"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// Sentinel error patterns.
const (
	NoPrefsFile   = "prefs: no file (%s)"
	DiskError     = "prefs: %v"
	DuplicateKey  = "prefs: key already added (%s)"
	InvalidEntry  = "prefs: %s: %v"
	NoDiskBinding = "prefs: key not added (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	v       *viper.Viper
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path should have the .toml extension.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		v:       viper.New(),
		entries: make(map[string]pref),
	}
	dsk.v.SetConfigFile(path)
	dsk.v.SetConfigType("toml")
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is case insensitive.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.ToLower(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// BindFlag binds a command line flag to a key that has been added to the
// Disk. If the flag has been changed on the command line its value is used
// by Load() in preference to the value in the file.
func (dsk *Disk) BindFlag(key string, flag *pflag.Flag) error {
	key = strings.ToLower(key)
	if _, ok := dsk.entries[key]; !ok {
		return curated.Errorf(NoDiskBinding, key)
	}
	if err := dsk.v.BindPFlag(key, flag); err != nil {
		return curated.Errorf(DiskError, err)
	}
	return nil
}

// Reset all entries to their default values.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(InvalidEntry, k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// a separate instance is used for writing so that the values set here
	// do not shadow bound flags in subsequent calls to Load()
	w := viper.New()
	w.SetConfigFile(dsk.path)
	w.SetConfigType("toml")

	// read the existing file so that unrelated entries survive. a missing
	// file is not a problem here
	if err := w.ReadInConfig(); err != nil && !isMissing(err) {
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		w.Set(k, p.Get())
	}

	if err := w.WriteConfigAs(dsk.path); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

func (dsk *Disk) Load(ignoreMissing bool) error {
	if err := dsk.v.ReadInConfig(); err != nil {
		if !isMissing(err) {
			return curated.Errorf(DiskError, err)
		}
		if !ignoreMissing {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
	}

	for k, p := range dsk.entries {
		if !dsk.v.IsSet(k) {
			continue
		}
		if err := p.Set(dsk.v.Get(k)); err != nil {
			return curated.Errorf(InvalidEntry, k, err)
		}
	}

	return nil
}

func isMissing(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nf)
}
