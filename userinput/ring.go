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

package userinput

// BufferedKey is an entry in the key buffer. Char is zero if the key did not
// produce a character. Code is KeyNone for characters that arrived without a
// key press.
type BufferedKey struct {
	Code KeyCode
	Char rune
}

// Ring is a fixed capacity first-in-first-out queue of BufferedKey values.
// Entries are never overwritten. Push() fails when the ring is full.
type Ring struct {
	// one slot is always left empty so that a full ring can be distinguished
	// from an empty one
	entries []BufferedKey

	// read and write cursors
	start int
	end   int
}

// NewRing returns a ring that can hold size entries.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		entries: make([]BufferedKey, size+1),
	}
}

func (r *Ring) next(i int) int {
	i++
	if i >= len(r.entries) {
		return 0
	}
	return i
}

// Push adds an entry to the end of the ring. Returns false if the ring is
// full, in which case the entry is dropped.
func (r *Ring) Push(k BufferedKey) bool {
	n := r.next(r.end)
	if n == r.start {
		return false
	}
	r.entries[r.end] = k
	r.end = n
	return true
}

// Pop removes the entry at the start of the ring. Returns false if the ring is
// empty.
func (r *Ring) Pop() (BufferedKey, bool) {
	if r.start == r.end {
		return BufferedKey{}, false
	}
	k := r.entries[r.start]
	r.start = r.next(r.start)
	return k, true
}

// AmendLast sets the character of the most recently pushed entry. Returns
// false if the ring is empty.
func (r *Ring) AmendLast(char rune) bool {
	if r.start == r.end {
		return false
	}
	last := r.end - 1
	if last < 0 {
		last = len(r.entries) - 1
	}
	r.entries[last].Char = char
	return true
}

// Clear empties the ring.
func (r *Ring) Clear() {
	r.start = 0
	r.end = 0
}

// Len returns the number of entries in the ring.
func (r *Ring) Len() int {
	if r.end >= r.start {
		return r.end - r.start
	}
	return len(r.entries) - r.start + r.end
}

// Cap returns the number of entries the ring can hold.
func (r *Ring) Cap() int {
	return len(r.entries) - 1
}
