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
package screen

import (
	"io"
	"log"
	"os"

	"github.com/timburks/kilo/terminal"
	kilo "github.com/timburks/kilo/types"
)

// A TerminalScreen draws directly on a raw-mode terminal.
type TerminalScreen struct {
	session *terminal.Session
	out     io.Writer
	decoder *terminal.Decoder
	size    kilo.Size
}

// NewTerminalScreen puts the controlling terminal into raw mode and
// measures it. The terminal is restored if measuring fails.
func NewTerminalScreen() (*TerminalScreen, error) {
	session, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	size, err := terminal.WindowSize(int(os.Stdout.Fd()), session)
	if err != nil {
		session.Close()
		return nil, err
	}
	log.Printf("terminal is %d rows by %d columns", size.Rows, size.Cols)
	s := newTerminalScreen(session, size)
	s.session = session
	return s, nil
}

func newTerminalScreen(rw io.ReadWriter, size kilo.Size) *TerminalScreen {
	return &TerminalScreen{
		out:     rw,
		decoder: terminal.NewDecoder(rw),
		size:    size,
	}
}

func (s *TerminalScreen) Size() kilo.Size {
	return s.size
}

// Render draws a complete frame with a single write.
func (s *TerminalScreen) Render(v kilo.Viewer) error {
	v.SetSize(s.size)
	v.Scroll()
	return composeFrame(v.Lines(), v.ScreenCursor()).Flush(s.out)
}

func composeFrame(lines []string, cursor kilo.Point) *terminal.Frame {
	f := terminal.NewFrame()
	f.HideCursor()
	f.Home()
	for i, line := range lines {
		f.WriteString(line)
		f.ClearLine()
		if i < len(lines)-1 {
			f.NewLine()
		}
	}
	f.MoveCursor(cursor)
	f.ShowCursor()
	return f
}

func (s *TerminalScreen) ReadKey() (kilo.Event, error) {
	return s.decoder.ReadKey()
}

// Close restores the terminal.
func (s *TerminalScreen) Close() error {
	if s.session == nil {
		return nil
	}
	return s.session.Close()
}
