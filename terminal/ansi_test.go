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
	"testing"

	kilo "github.com/timburks/kilo/types"
)

type countingWriter struct {
	writes int
	data   []byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestFrameFlushIsOneWrite(t *testing.T) {
	f := NewFrame()
	f.HideCursor()
	f.Home()
	f.WriteString("hello")
	f.ClearLine()
	f.NewLine()
	f.WriteString("~")
	f.ClearLine()
	f.MoveCursor(kilo.Point{Row: 2, Col: 4})
	f.ShowCursor()

	w := &countingWriter{}
	if err := f.Flush(w); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if w.writes != 1 {
		t.Errorf("frame took %d writes", w.writes)
	}
	expected := "\x1b[?25l\x1b[Hhello\x1b[K\r\n~\x1b[K\x1b[3;5H\x1b[?25h"
	if string(w.data) != expected {
		t.Errorf("got %q, expected %q", w.data, expected)
	}
	if f.Len() != 0 {
		t.Errorf("frame not emptied after flush")
	}
}
