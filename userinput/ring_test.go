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

package userinput_test

import (
	"testing"

	"github.com/wz2100/wzframe/test"
	"github.com/wz2100/wzframe/userinput"
)

func TestRing(t *testing.T) {
	r := userinput.NewRing(3)
	test.ExpectEquality(t, r.Cap(), 3)
	test.ExpectEquality(t, r.Len(), 0)

	_, ok := r.Pop()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, r.AmendLast('x'))

	test.ExpectSuccess(t, r.Push(userinput.BufferedKey{Code: userinput.KeyA}))
	test.ExpectSuccess(t, r.Push(userinput.BufferedKey{Code: userinput.KeyB}))
	test.ExpectSuccess(t, r.Push(userinput.BufferedKey{Code: userinput.KeyC}))
	test.ExpectEquality(t, r.Len(), 3)

	// full
	test.ExpectFailure(t, r.Push(userinput.BufferedKey{Code: userinput.KeyD}))
	test.ExpectEquality(t, r.Len(), 3)

	k, ok := r.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k.Code, userinput.KeyA)
	test.ExpectEquality(t, r.Len(), 2)

	// wraps around the end of the underlying slice
	test.ExpectSuccess(t, r.Push(userinput.BufferedKey{Code: userinput.KeyE}))
	test.ExpectSuccess(t, r.AmendLast('e'))
	test.ExpectFailure(t, r.Push(userinput.BufferedKey{Code: userinput.KeyF}))

	for _, expected := range []userinput.KeyCode{userinput.KeyB, userinput.KeyC, userinput.KeyE} {
		k, ok = r.Pop()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, k.Code, expected)
	}
	test.ExpectEquality(t, k.Char, 'e')

	_, ok = r.Pop()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r.Len(), 0)
}

func TestRingAmendLastAtSliceStart(t *testing.T) {
	r := userinput.NewRing(2)

	// move the cursors so that the next entry is written to the start of
	// the underlying slice
	r.Push(userinput.BufferedKey{Code: userinput.KeyA})
	r.Push(userinput.BufferedKey{Code: userinput.KeyB})
	r.Pop()
	r.Pop()
	r.Push(userinput.BufferedKey{Code: userinput.KeyC})
	r.Push(userinput.BufferedKey{Code: userinput.KeyD})

	test.ExpectSuccess(t, r.AmendLast('d'))
	k, _ := r.Pop()
	test.ExpectEquality(t, k.Char, 0)
	k, _ = r.Pop()
	test.ExpectEquality(t, k.Code, userinput.KeyD)
	test.ExpectEquality(t, k.Char, 'd')
}

func TestRingClear(t *testing.T) {
	r := userinput.NewRing(4)
	r.Push(userinput.BufferedKey{Code: userinput.KeyA})
	r.Push(userinput.BufferedKey{Code: userinput.KeyB})
	r.Clear()
	test.ExpectEquality(t, r.Len(), 0)
	_, ok := r.Pop()
	test.ExpectFailure(t, ok)
}

func TestKeyBuffer(t *testing.T) {
	in := userinput.NewInput(nil)

	_, ok := in.GetKey()
	test.ExpectFailure(t, ok)

	// key press followed by the text it produced
	in.AddBuffer(userinput.KeyA, 0, 1)
	in.TextInput("a")

	// key press that produces no text
	in.KeyEvent(userinput.KeyF1, true)
	in.AddBuffer(userinput.KeyF1, 0, 1)
	in.KeyEvent(userinput.KeyF1, false)

	// text with no key press
	in.TextInput("é")

	// multiple copies
	in.AddBuffer(userinput.KeyBackspace, '\b', 2)

	k, ok := in.GetKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyA)
	test.ExpectEquality(t, in.GetCharKey(), 'a')

	k, _ = in.GetKey()
	test.ExpectEquality(t, k, userinput.KeyF1)
	test.ExpectEquality(t, in.GetCharKey(), 0)

	k, _ = in.GetKey()
	test.ExpectEquality(t, k, userinput.KeyNone)
	test.ExpectEquality(t, in.GetCharKey(), 'é')

	for range 2 {
		k, ok = in.GetKey()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, k, userinput.KeyBackspace)
		test.ExpectEquality(t, in.GetCharKey(), '\b')
	}

	_, ok = in.GetKey()
	test.ExpectFailure(t, ok)

	// the character of the last key is remembered after the buffer empties
	test.ExpectEquality(t, in.GetCharKey(), '\b')
}

func TestKeyBufferMultipleCharacters(t *testing.T) {
	in := userinput.NewInput(nil)

	in.AddBuffer(userinput.KeyQuote, 0, 1)
	in.TextInput("'e")

	k, _ := in.GetKey()
	test.ExpectEquality(t, k, userinput.KeyQuote)
	test.ExpectEquality(t, in.GetCharKey(), '\'')
	k, _ = in.GetKey()
	test.ExpectEquality(t, k, userinput.KeyNone)
	test.ExpectEquality(t, in.GetCharKey(), 'e')
}

func TestKeyBufferFull(t *testing.T) {
	in := userinput.NewInput(nil)

	in.AddBuffer(userinput.KeyX, 'x', userinput.DefaultBufferSize+10)
	in.AddBuffer(userinput.KeyY, 'y', 1)

	var n int
	for {
		k, ok := in.GetKey()
		if !ok {
			break // for loop
		}
		test.ExpectEquality(t, k, userinput.KeyX)
		n++
	}
	test.ExpectEquality(t, n, userinput.DefaultBufferSize)

	// a dropped key press does not take the next character
	in.AddBuffer(userinput.KeyZ, 0, userinput.DefaultBufferSize)
	in.AddBuffer(userinput.KeyA, 0, 1)
	_, _ = in.GetKey()
	in.TextInput("a")

	for range userinput.DefaultBufferSize - 1 {
		k, _ := in.GetKey()
		test.ExpectEquality(t, k, userinput.KeyZ)
		test.ExpectEquality(t, in.GetCharKey(), 0)
	}
	k, ok := in.GetKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyNone)
	test.ExpectEquality(t, in.GetCharKey(), 'a')

	in.AddBuffer(userinput.KeyA, 'a', 5)
	in.ClearBuffer()
	_, ok = in.GetKey()
	test.ExpectFailure(t, ok)
}
