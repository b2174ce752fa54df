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

package sdlplatform

import (
	"fmt"
	"time"

	"github.com/wz2100/wzframe/curated"
	"github.com/wz2100/wzframe/gui/fonts"
	"github.com/wz2100/wzframe/logger"
	"github.com/wz2100/wzframe/prefs"
	"github.com/wz2100/wzframe/resources"
	"github.com/wz2100/wzframe/userinput"
)

// Preference keys used by the platform.
const (
	PrefNoMouseWarp   = "framework.nomousewarp"
	PrefVSync         = "framework.vsync"
	PrefFSAA          = "framework.fsaa"
	PrefWindowSize    = "framework.windowsize"
	PrefDoubleClick   = "input.doubleclick"
	PrefDragThreshold = "input.dragthreshold"
	PrefFontSize      = "fonts.size"
	PrefDataDir       = "framework.datadir"
)

// longest game data directory that will be stored.
const maxDataDirLen = 4096

// default window size.
const (
	defaultWidth  = 640
	defaultHeight = 480
)

type preferences struct {
	dsk *prefs.Disk

	noMouseWarp   prefs.Bool
	vsync         prefs.Bool
	fsaa          prefs.Int
	doubleClick   prefs.Int
	dragThreshold prefs.Int
	fontSize      prefs.Float
	dataDir       prefs.String

	width  int
	height int
}

// newPreferences loads the preferences from the file in the resources
// directory, or from path if it is not empty. changes to the input and font
// preferences are applied to in and txt immediately.
func newPreferences(path string, in *userinput.Input, txt *fonts.Text) (*preferences, error) {
	p := &preferences{
		width:  defaultWidth,
		height: defaultHeight,
	}

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("prefs: %v", err)
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// default values
	_ = p.vsync.Set(true)
	_ = p.doubleClick.Set(int(userinput.DefaultDoubleClickInterval / time.Millisecond))
	_ = p.dragThreshold.Set(userinput.DefaultDragThreshold)
	_ = p.fontSize.Set(fonts.DefaultRegularSize)

	p.dataDir.SetMaxLen(maxDataDirLen)

	p.fsaa.SetHookPre(func(v prefs.Value) error {
		switch v.(int) {
		case 0, 2, 4, 8, 16:
			return nil
		}
		return curated.Errorf("fsaa must be one of 0, 2, 4, 8 or 16")
	})

	p.doubleClick.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("double-click interval must be positive")
		}
		return nil
	})
	p.doubleClick.SetHookPost(func(v prefs.Value) error {
		in.SetDoubleClickInterval(time.Duration(v.(int)) * time.Millisecond)
		return nil
	})

	p.dragThreshold.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("drag threshold cannot be negative")
		}
		return nil
	})
	p.dragThreshold.SetHookPost(func(v prefs.Value) error {
		in.SetDragThreshold(v.(int))
		return nil
	})

	p.fontSize.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf("font size must be positive")
		}
		return nil
	})
	p.fontSize.SetHookPost(func(v prefs.Value) error {
		return txt.SetFontSize(fonts.Regular, v.(float64))
	})

	windowSize := prefs.NewGeneric(
		func(s string) error {
			var w, h int
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			if err != nil {
				return curated.Errorf("window size: %v", err)
			}
			if w <= 0 || h <= 0 {
				return curated.Errorf("window size: %dx%d is not allowed", w, h)
			}
			p.width = w
			p.height = h
			return nil
		},
		func() string {
			return fmt.Sprintf("%d,%d", p.width, p.height)
		},
	)

	entries := []struct {
		key string
		p   prefs.Pref
	}{
		{PrefNoMouseWarp, &p.noMouseWarp},
		{PrefVSync, &p.vsync},
		{PrefFSAA, &p.fsaa},
		{PrefWindowSize, windowSize},
		{PrefDoubleClick, &p.doubleClick},
		{PrefDragThreshold, &p.dragThreshold},
		{PrefFontSize, &p.fontSize},
		{PrefDataDir, &p.dataDir},
	}
	for _, e := range entries {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
		logger.Logf(logger.Allow, "prefs", "%v", err)
	}

	return p, nil
}
