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

package paths

import (
	"os"
	"path/filepath"
)

// the name of the resource directory when it is found in the current working
// directory. when the user configuration directory is used the leading dot is
// removed.
const baseResourcePath = ".mact"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory. The sub-path is created if
// it does not exist. The file argument can be empty in which case the
// resource directory (and sub-path) is returned.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	var base string

	if _, err := os.Stat(baseResourcePath); err == nil {
		base = baseResourcePath
	} else {
		cfg, err := os.UserConfigDir()
		if err != nil {
			base = baseResourcePath
		} else {
			base = filepath.Join(cfg, baseResourcePath[1:])
		}
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
