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

package cursors

// ID identifies a cursor.
type ID int

// List of valid ID values.
const (
	Arrow ID = iota
	Dest
	Sight
	Target
	LArrow
	RArrow
	DArrow
	UArrow
	Default
	EdgeOfMap
	Attach
	Attack
	Bomb
	Bridge
	Build
	Embark
	Fix
	Guard
	Jam
	LockOn
	Menu
	Move
	NotPossible
	PickUp
	SeekRepair
	Select

	// NumCursors is the number of cursor IDs
	NumCursors
)

var names = [NumCursors]string{
	Arrow:       "arrow",
	Dest:        "dest",
	Sight:       "sight",
	Target:      "target",
	LArrow:      "left arrow",
	RArrow:      "right arrow",
	DArrow:      "down arrow",
	UArrow:      "up arrow",
	Default:     "default",
	EdgeOfMap:   "edge of map",
	Attach:      "attach",
	Attack:      "attack",
	Bomb:        "bomb",
	Bridge:      "bridge",
	Build:       "build",
	Embark:      "embark",
	Fix:         "fix",
	Guard:       "guard",
	Jam:         "jam",
	LockOn:      "lock on",
	Menu:        "menu",
	Move:        "move",
	NotPossible: "not possible",
	PickUp:      "pick up",
	SeekRepair:  "seek repair",
	Select:      "select",
}

func (id ID) String() string {
	if !id.Valid() {
		return "unknown cursor"
	}
	return names[id]
}

// Valid returns true if the ID refers to a cursor.
func (id ID) Valid() bool {
	return id >= Arrow && id < NumCursors
}

// System identifies one of the cursors supplied by the windowing system.
type System int

// List of valid System values.
const (
	// the cursor is not a system cursor
	SystemNone System = iota

	SystemArrow
	SystemSizeVertical
	SystemSizeHorizontal
)

func (s System) String() string {
	switch s {
	case SystemArrow:
		return "arrow"
	case SystemSizeVertical:
		return "size vertical"
	case SystemSizeHorizontal:
		return "size horizontal"
	}
	return "none"
}

// Source describes where the image for a cursor comes from. If System is
// SystemNone then the image is clipped from the sprite sheet with the top
// left corner at X and Y.
type Source struct {
	System System
	X      int
	Y      int
}

var sources = [NumCursors]Source{
	PickUp:      {X: 96, Y: 160},
	Attack:      {X: 192, Y: 128},
	Select:      {X: 32, Y: 160},
	LockOn:      {X: 192, Y: 160},
	Jam:         {X: 224, Y: 128},
	Default:     {X: 64, Y: 128},
	Build:       {X: 96, Y: 128},
	Move:        {X: 160, Y: 160},
	Guard:       {X: 224, Y: 128},
	Embark:      {X: 0, Y: 128},
	Bridge:      {X: 128, Y: 128},
	Attach:      {X: 0, Y: 192},
	Fix:         {X: 0, Y: 160},
	SeekRepair:  {X: 64, Y: 160},
	NotPossible: {X: 128, Y: 160},
	Dest:        {X: 32, Y: 128},

	Arrow:     {System: SystemArrow},
	Menu:      {System: SystemArrow},
	Bomb:      {System: SystemArrow},
	EdgeOfMap: {System: SystemArrow},
	Sight:     {System: SystemArrow},
	Target:    {System: SystemArrow},
	UArrow:    {System: SystemSizeVertical},
	DArrow:    {System: SystemSizeVertical},
	LArrow:    {System: SystemSizeHorizontal},
	RArrow:    {System: SystemSizeHorizontal},
}

// SourceOf returns the source of the cursor. Invalid IDs are shown with the
// system arrow.
func SourceOf(id ID) Source {
	if !id.Valid() {
		return Source{System: SystemArrow}
	}
	return sources[id]
}
