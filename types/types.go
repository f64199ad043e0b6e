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
package types

// Version is displayed in the welcome banner.
const Version = "0.0.1"

// Viewer modes
const (
	ModeView = 0
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key identifies a decoded keystroke. KeyRune events carry the
// literal input byte in Event.Ch; all other keys are navigation keys.
type Key int

const (
	KeyRune Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPgup
	KeyPgdn
	KeyHome
	KeyEnd
	KeyDelete
	KeyEsc // escape sequence that could not be resolved
	KeyUnsupported
)

var keyNames = map[Key]string{
	KeyRune:        "Rune",
	KeyArrowUp:     "ArrowUp",
	KeyArrowDown:   "ArrowDown",
	KeyArrowLeft:   "ArrowLeft",
	KeyArrowRight:  "ArrowRight",
	KeyPgup:        "PageUp",
	KeyPgdn:        "PageDown",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyDelete:      "Delete",
	KeyEsc:         "Escape",
	KeyUnsupported: "Unsupported",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(?)"
}

// An Event is a single logical keystroke.
type Event struct {
	Key Key
	Ch  rune
}

// CtrlKey returns the byte produced by holding control with k.
func CtrlKey(k byte) rune {
	return rune(k & 0x1f)
}

// A Viewer is the state a Screen draws: the visible lines and the
// on-screen cursor for the current viewport.
type Viewer interface {
	SetSize(size Size)
	GetSize() Size
	Scroll()
	Lines() []string
	ScreenCursor() Point
}

// An Editor is a Viewer whose cursor can be moved by commands.
type Editor interface {
	Viewer
	GetCursor() Point
	GetRowCount() int
	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
}

// A Screen draws a Viewer and produces key events.
type Screen interface {
	Render(v Viewer) error
	ReadKey() (Event, error)
	Close() error
}
