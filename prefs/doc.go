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

// Package prefs facilitates the storage and retrieval of user preferences.
//
// Preference values are represented by the Bool, Int, Float and String types.
// Each type can be used on its own, as a thread-safe value with optional
// hooks that run before and after a new value is set, or added to a Disk
// instance so that it can be saved to and loaded from a file.
//
// The Disk type stores values in a TOML file using the viper package. Keys
// are dotted strings and each dot introduces a new table in the file:
//
//	control.mouse.sensitivity
//
// is saved as:
//
//	[control.mouse]
//	sensitivity = 7.0
//
// Entries in the file that have not been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// Command line flags can be bound to a key with the BindFlag() function. A
// flag that has been set on the command line takes precedence over the value
// in the file when Load() is called.
package prefs
