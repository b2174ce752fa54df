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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each mode with its own set of flags.
//
// Arguments are supplied once with NewArgs(). Flags and sub-modes for the
// current layer are then added before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "KEYS")
//	vsync := md.AddBool("vsync", true, "wait for vertical sync")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// The first sub-mode in the list is the default. It is selected when the
// first non-flag argument does not name a sub-mode.
//
// A mode can be divided again by calling NewMode() after Parse() and adding
// a new list of sub-modes and flags. The chain of selected modes is returned
// by Path(), separated by a forward slash.
//
// Help is printed to the Output writer when the -help or -h flag is found.
// The help lists the flags of the current mode and any sub-modes that have
// been added, with the default sub-mode marked.
package modalflag
