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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/wz2100/wzframe/demo"
	"github.com/wz2100/wzframe/gui/sdlplatform"
	"github.com/wz2100/wzframe/logger"
	"github.com/wz2100/wzframe/modalflag"
	"github.com/wz2100/wzframe/prefs"
	"github.com/wz2100/wzframe/statsview"
	"github.com/wz2100/wzframe/userinput"
	"github.com/wz2100/wzframe/version"
)

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. Returns the
// value to use with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "KEYS")
	md.AdditionalHelp(fmt.Sprintf("%s %s", version.ApplicationName, versionString()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "KEYS":
		err = keys(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func versionString() string {
	ver, rev, _ := version.Version()
	return fmt.Sprintf("%s (%s)", ver, rev)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fsaa := md.AddInt("fsaa", 0, "multisample anti-aliasing samples: 0, 2, 4, 8 or 16")
	vsync := md.AddBool("vsync", true, "synchronise with the vertical retrace")
	width := md.AddInt("width", 0, "width of the window")
	height := md.AddInt("height", 0, "height of the window")
	noWarp := md.AddBool("nomousewarp", false, "never move the mouse pointer")
	dataDir := md.AddString("data", "", "game data directory. overrides the framework.datadir preference")
	prefsFile := md.AddString("prefsfile", "", "preferences file")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session: \"key::value; key::value\"")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	// flags that map to a preference are added to the command line group
	// along with the -prefs flag. the flags take priority
	group := []string{*cmdPrefs}
	var w, h bool
	md.Visit(func(flag string) {
		switch flag {
		case "fsaa":
			group = append(group, fmt.Sprintf("%s::%d", sdlplatform.PrefFSAA, *fsaa))
		case "vsync":
			group = append(group, fmt.Sprintf("%s::%v", sdlplatform.PrefVSync, *vsync))
		case "nomousewarp":
			group = append(group, fmt.Sprintf("%s::%v", sdlplatform.PrefNoMouseWarp, *noWarp))
		case "width":
			w = true
		case "height":
			h = true
		}
	})
	if w != h {
		return fmt.Errorf("-width and -height must be used together")
	}
	if w {
		group = append(group, fmt.Sprintf("%s::%d,%d", sdlplatform.PrefWindowSize, *width, *height))
	}

	prefs.PushCommandLineStack(strings.Join(group, ";"))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	plt, err := sdlplatform.NewPlatform(sdlplatform.Options{
		DataDir:   *dataDir,
		PrefsFile: *prefsFile,
		Interrupt: intChan,
	})
	if err != nil {
		return err
	}

	err = plt.Run(demo.NewGame())
	if destroyErr := plt.Destroy(); err == nil {
		err = destroyErr
	}

	return err
}

func keys(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for k := userinput.KeyNone + 1; k < userinput.NumKeyCodes; k++ {
		fmt.Fprintf(output, "%3d %s\n", k, k)
	}

	return nil
}
