// This file is part of wzframe.
//
// wzframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wzframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wzframe.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs provides typed preference values that can be stored on disk.
//
// Values are registered with a Disk under a key. Load() sets every registered
// value from the file and Save() writes them back. Keys in the file that are
// not registered with the Disk instance are preserved by Save(), so more than
// one Disk can share a file.
//
// The file is plain text, one preference per line:
//
//	framework.vsync :: true
//	input.doubleclick :: 250
//
// Preference values can also be supplied on the command line with
// PushCommandLineStack(). Values on the top of the command line stack take
// priority over those in the file when Load() is called. They last for the
// session and are not written to the file by Load().
package prefs
