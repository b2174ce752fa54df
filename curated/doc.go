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

// Package curated wraps the Go error type with a pattern that can be tested
// for later in the call chain.
//
// Errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf(). The pattern is retained
// and is what Is() and Has() compare against. Packages should declare the
// patterns they return as exported constants so that callers can test for
// them:
//
//	const AtlasError = "cursors: atlas: %v"
//
//	err := cursors.LoadAtlas(r)
//	if curated.Is(err, cursors.AtlasError) {
//		...
//	}
//
// Is() only tests the outermost error. Has() tests the entire chain of
// curated errors, where a chain is formed by passing one curated error as a
// placeholder value to another.
//
// The message returned by Error() is normalised so that duplicate adjacent
// parts of the chain are removed. Parts are separated by ": ". This means a
// function can wrap an error with its package prefix without worrying whether
// the error it received already carries that prefix:
//
//	cursors: cursors: bad clip
//
// is reported as
//
//	cursors: bad clip
package curated
