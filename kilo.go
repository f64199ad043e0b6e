//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/timburks/kilo/commander"
	"github.com/timburks/kilo/config"
	"github.com/timburks/kilo/editor"
	"github.com/timburks/kilo/screen"
	kilo "github.com/timburks/kilo/types"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type arguments struct {
	filename string
	script   string
}

func parseArguments(args []string) (arguments, error) {
	var a arguments
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-eval", "--eval": // eval program
			i++
			if i >= len(args) {
				return a, errors.New("no expression specified for --eval option")
			}
			a.script = args[i]
		default:
			if a.filename != "" {
				return a, fmt.Errorf("unexpected argument %q", args[i])
			}
			a.filename = args[i]
		}
	}
	return a, nil
}

func run(args []string) (err error) {
	a, err := parseArguments(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	closeLog := openLog(cfg.LogFile)
	defer closeLog()
	defer func() {
		if err != nil {
			log.Output(1, err.Error())
		}
	}()

	// The editor tracks the buffer and the cursor.
	e := editor.NewEditor()
	e.SetTabStop(cfg.TabStop)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if a.script != "" {
		// Run a script and print the resulting screen.
		if a.filename != "" {
			if err := e.ReadFile(a.filename); err != nil {
				return err
			}
		}
		e.SetSize(kilo.Size{Rows: cfg.EvalRows, Cols: cfg.EvalCols})
		return c.RunScript(os.Stdout, a.script)
	}

	// Create a screen to manage display.
	s, err := screen.New(cfg.Display)
	if err != nil {
		return err
	}
	defer s.Close()
	stop := closeOnSignal(s)
	defer stop()
	log.Printf("display %s", cfg.Display)

	if a.filename != "" {
		if err := e.ReadFile(a.filename); err != nil {
			return err
		}
	}

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			return err
		}
		event, err := s.ReadKey()
		if err != nil {
			return err
		}
		c.ProcessEvent(event)
	}
	return nil
}

// openLog sends log output to path, or discards it.
func openLog(path string) func() {
	log.SetOutput(io.Discard)
	if path == "" {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}
}

// closeOnSignal restores the screen and exits when the process is
// asked to terminate. The returned function stops watching. The
// watcher only calls the screen's once-only Close; it never touches
// the buffer or the viewport.
func closeOnSignal(s kilo.Screen) func() {
	sigCh := make(chan os.Signal, 1)
	doneCh := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("exiting on %v", sig)
			s.Close()
			os.Exit(1)
		case <-doneCh:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(doneCh)
	}
}
