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

package test

import "strings"

// CompareWriter collects the output of a function that writes to an
// io.Writer. The zero value is ready to use.
type CompareWriter struct {
	strings.Builder
}

// Clear discards the collected output.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}

// Compare returns true if the collected output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}

// Lines returns the collected output split at newlines. The final newline
// does not produce an empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
