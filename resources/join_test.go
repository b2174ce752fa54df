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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/wz2100/wzframe/resources"
	"github.com/wz2100/wzframe/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".wzframe", 0o700))

	pth, err := resources.JoinPath("images", "intfac5.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".wzframe", "images", "intfac5.png"))

	// parent directory has been created but not the file
	info, err := os.Stat(filepath.Join(".wzframe", "images"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth, err = resources.JoinPath(".wzframe", "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".wzframe", "preferences"))
}

func TestJoinPathConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("configuration directory can only be redirected on linux")
	}

	cnf := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cnf)
	t.Chdir(t.TempDir())

	// no resource directory in the working directory
	pth, err := resources.JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(cnf, "wzframe", "preferences"))

	info, err := os.Stat(filepath.Join(cnf, "wzframe"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	_, err = os.Stat(".wzframe")
	test.ExpectFailure(t, err)
}
