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
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	kilo "github.com/timburks/kilo/types"
)

// Lines returns the text of each screen row for the current offset.
// Rows past the end of the buffer are drawn as "~"; an empty buffer
// shows a welcome banner a third of the way down.
func (e *Editor) Lines() []string {
	lines := make([]string, 0, e.size.Rows)
	count := e.Buffer.GetRowCount()
	for y := 0; y < e.size.Rows; y++ {
		fileRow := y + e.Offset
		switch {
		case fileRow < count:
			text := e.Buffer.GetRow(fileRow).DisplayText(e.tabStop)
			lines = append(lines, runewidth.Truncate(text, e.size.Cols, ""))
		case count == 0 && y == e.size.Rows/3:
			lines = append(lines, e.welcome())
		default:
			lines = append(lines, "~")
		}
	}
	return lines
}

func (e *Editor) welcome() string {
	welcome := fmt.Sprintf("Kilo editor -- version %s", kilo.Version)
	if len(welcome) > e.size.Cols {
		welcome = welcome[:e.size.Cols]
	}
	padding := (e.size.Cols - len(welcome)) / 2
	var b strings.Builder
	if padding > 0 {
		b.WriteString("~")
		padding--
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(welcome)
	return b.String()
}

// ScreenCursor returns the cursor position relative to the screen.
func (e *Editor) ScreenCursor() kilo.Point {
	return kilo.Point{Row: e.Cursor.Row - e.Offset, Col: e.Cursor.Col}
}
