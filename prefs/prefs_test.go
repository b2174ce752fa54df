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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/prefs"
	"github.com/wz2100/wzframe/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("framework.vsync", &v))
	test.ExpectSuccess(t, dsk.Add("framework.nomousewarp", &w))
	test.ExpectSuccess(t, dsk.Add("test", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "framework.nomousewarp :: false\nframework.vsync :: true\ntest :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("input.doubleclick", &v))
	test.ExpectSuccess(t, dsk.Add("input.dragthreshold", &w))

	test.ExpectSuccess(t, v.Set(250))
	test.ExpectSuccess(t, w.Set("5"))
	test.ExpectEquality(t, w.Get().(int), 5)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "input.doubleclick :: 250\ninput.dragthreshold :: 5\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 250)
}

func TestFloatAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("fonts.size", &f))
	test.ExpectSuccess(t, dsk.Add("fonts.name", &s))

	test.ExpectEquality(t, f.Get().(float64), 0.0)
	test.ExpectSuccess(t, f.Set("12.5"))
	test.ExpectSuccess(t, s.Set("DejaVu Sans"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "fonts.name :: DejaVu Sans\nfonts.size :: 12.500\n")
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("framework.windowsize", v))

	w = 640
	h = 480
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "framework.windowsize :: 640,480\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)
}

// saving from a second Disk instance must not clobber the entries saved by
// the first
func TestSharedFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoadMissingFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("input.doubleclick", &v))
	test.ExpectSuccess(t, v.Set(250))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	// saveOnFail creates the file with the current values
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpPrefsFile(t, fn, "input.doubleclick :: 250\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad::key", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectSuccess(t, dsk.Add("good", &v))
	test.ExpectFailure(t, dsk.Add("good", &v))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not restore cropped information
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(300))
	test.ExpectEquality(t, seen, 300)

	v.SetHookPre(func(value prefs.Value) error {
		return fmt.Errorf("rejected")
	})
	test.ExpectFailure(t, v.Set(400))
	test.ExpectEquality(t, v.Get().(int), 300)
}
