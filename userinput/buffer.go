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

import (
	"github.com/wz2100/wzframe/logger"
)

// the logger tag for the package
const logTag = "input"

// AddBuffer adds count copies of the key and character to the key buffer.
// Keys that do not fit are dropped.
//
// If char is zero then a subsequent call to TextInput() will supply the
// character for the last entry.
func (in *Input) AddBuffer(code KeyCode, char rune, count int) {
	in.pendingChar = false

	var added int
	for added < count {
		if !in.buffer.Push(BufferedKey{Code: code, Char: char}) {
			logger.Logf(logger.Allow, logTag, "key buffer full: dropped %d of %s", count-added, code)
			break // for loop
		}
		added++
	}

	in.pendingChar = added > 0 && char == 0
}

// TextInput supplies the characters produced by the most recent key press.
// The first character is attached to the last buffered key if that key is
// still waiting for a character. Other characters are buffered with KeyNone.
func (in *Input) TextInput(text string) {
	for _, r := range text {
		if in.pendingChar && in.buffer.AmendLast(r) {
			in.pendingChar = false
			continue // for loop
		}
		in.AddBuffer(KeyNone, r, 1)
	}
}

// ClearBuffer empties the key buffer.
func (in *Input) ClearBuffer() {
	in.buffer.Clear()
	in.pendingChar = false
}

// GetKey returns the next key in the buffer. Returns false if the buffer is
// empty.
func (in *Input) GetKey() (KeyCode, bool) {
	k, ok := in.buffer.Pop()
	if !ok {
		return KeyNone, false
	}
	in.currentChar = k.Char

	// the entry has been consumed so any character that arrives later can't
	// be attached to it
	if in.buffer.Len() == 0 {
		in.pendingChar = false
	}

	return k.Code, true
}

// GetCharKey returns the character of the key last returned by GetKey().
func (in *Input) GetCharKey() rune {
	return in.currentChar
}
