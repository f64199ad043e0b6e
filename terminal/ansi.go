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
package terminal

import (
	"bytes"
	"io"
	"strconv"

	kilo "github.com/timburks/kilo/types"
)

const escape = '\x1b'

// Escape sequences written to the terminal.
const (
	csiCursorHide   = "\x1b[?25l"
	csiCursorShow   = "\x1b[?25h"
	csiHome         = "\x1b[H"
	csiClearScreen  = "\x1b[2J"
	csiClearLine    = "\x1b[K"
	csiDeviceStatus = "\x1b[6n"
	// Cursor forward and down are bounded by the screen edges, so large
	// counts land the cursor on the bottom-right cell.
	csiBottomRight = "\x1b[999C\x1b[999B"
)

// A Frame accumulates one complete screen update.
type Frame struct {
	buf bytes.Buffer
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) HideCursor() { f.buf.WriteString(csiCursorHide) }
func (f *Frame) ShowCursor() { f.buf.WriteString(csiCursorShow) }
func (f *Frame) Home()       { f.buf.WriteString(csiHome) }
func (f *Frame) ClearLine()  { f.buf.WriteString(csiClearLine) }
func (f *Frame) NewLine()    { f.buf.WriteString("\r\n") }

func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// MoveCursor positions the cursor at a zero-based screen point.
func (f *Frame) MoveCursor(p kilo.Point) {
	f.buf.WriteString("\x1b[")
	f.buf.WriteString(strconv.Itoa(p.Row + 1))
	f.buf.WriteByte(';')
	f.buf.WriteString(strconv.Itoa(p.Col + 1))
	f.buf.WriteByte('H')
}

func (f *Frame) Bytes() []byte {
	return f.buf.Bytes()
}

func (f *Frame) Len() int {
	return f.buf.Len()
}

// Flush sends the frame with one call to w.Write and empties it.
func (f *Frame) Flush(w io.Writer) error {
	_, err := w.Write(f.buf.Bytes())
	f.buf.Reset()
	return err
}

// ClearScreen erases the display and homes the cursor.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, csiClearScreen+csiHome)
	return err
}
