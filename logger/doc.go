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

// Package logger is the central log for the application. Entries are kept in
// memory, up to a maximum number, and can be written to any io.Writer with
// Write() or Tail(). New entries can be echoed as they arrive with SetEcho().
//
// Every entry has a tag and a detail. The tag names the subsystem making the
// entry, for example "sdl" or "input". An entry that is identical to the
// previous entry is not added again; instead the previous entry is marked as
// repeated.
//
// Logging requests take a Permission argument. Use logger.Allow when the entry
// should always be made.
package logger
