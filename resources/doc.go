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

// Package resources prepares paths for wzframe resources, such as the
// preferences file.
//
// JoinPath() returns the path to the named resource, rooted in the base
// resource directory. Directories leading to the resource are created as
// required but the resource itself is not touched.
//
// The base directory is the ".wzframe" directory in the current working
// directory, if it exists. Otherwise the base is inside the user's
// configuration directory, for example:
//
//	/home/user/.config/wzframe/
//
// Builds with the "release" build tag always use the configuration directory.
package resources
