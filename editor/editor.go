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
package editor

import (
	"log"

	kilo "github.com/timburks/kilo/types"
)

const defaultTabStop = 8

// The Editor tracks the cursor and the visible window of a Buffer.
// Cursor.Row is a buffer row; Offset is the first buffer row on screen.
type Editor struct {
	Cursor  kilo.Point
	Offset  int
	Buffer  *Buffer
	size    kilo.Size
	tabStop int
}

func NewEditor() *Editor {
	return &Editor{Buffer: NewBuffer(), tabStop: defaultTabStop}
}

func (e *Editor) ReadFile(path string) error {
	b, err := ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer = b
	e.Cursor = kilo.Point{}
	e.Offset = 0
	log.Printf("read %s (%d rows)", path, b.GetRowCount())
	return nil
}

func (e *Editor) SetSize(size kilo.Size) {
	e.size = size
}

func (e *Editor) GetSize() kilo.Size {
	return e.size
}

func (e *Editor) GetCursor() kilo.Point {
	return e.Cursor
}

func (e *Editor) GetRowCount() int {
	return e.Buffer.GetRowCount()
}

func (e *Editor) SetTabStop(n int) {
	if n > 0 {
		e.tabStop = n
	}
}

// MoveCursor moves one step. The cursor stops at the left and top
// edges, at the last screen column, and one row past the last row.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case kilo.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case kilo.MoveRight:
		if e.Cursor.Col < e.size.Cols-1 {
			e.Cursor.Col++
		}
	case kilo.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case kilo.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount() {
			e.Cursor.Row++
		}
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	if e.size.Cols > 0 {
		e.Cursor.Col = e.size.Cols - 1
	}
}

// PageUp moves the cursor up by a screenful.
func (e *Editor) PageUp() {
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(kilo.MoveUp)
	}
}

// PageDown moves the cursor down by a screenful.
func (e *Editor) PageDown() {
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(kilo.MoveDown)
	}
}

// Scroll recomputes the offset to keep the cursor onscreen.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset {
		// scroll up
		e.Offset = e.Cursor.Row
	}
	if e.size.Rows > 0 && e.Cursor.Row >= e.Offset+e.size.Rows {
		// scroll down
		e.Offset = e.Cursor.Row - e.size.Rows + 1
	}
}
