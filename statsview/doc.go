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

// Package statsview runs a local HTTP server showing runtime statistics of
// the framework. It is only available when built with the "statsview" build
// tag, otherwise Available() returns false and Launch() does nothing.
//
// Graphs are served at:
//
//	localhost:12100/debug/statsview
//
// The server is backed by github.com/go-echarts/statsview and also exposes
// the standard pprof pages under /debug/pprof/.
package statsview
