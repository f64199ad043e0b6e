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
package commander

import (
	"log"

	kilo "github.com/timburks/kilo/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor kilo.Editor
	mode   int
}

func NewCommander(e kilo.Editor) *Commander {
	return &Commander{editor: e, mode: kilo.ModeView}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != kilo.ModeQuit
}

// ProcessEvent performs the command bound to a key. Keys without a
// binding, including unresolved escape sequences, are ignored.
func (c *Commander) ProcessEvent(event kilo.Event) {
	e := c.editor
	switch event.Key {
	case kilo.KeyRune:
		if event.Ch == kilo.CtrlKey('q') {
			log.Printf("quit at row %d", e.GetCursor().Row)
			c.mode = kilo.ModeQuit
		}
	case kilo.KeyHome:
		e.MoveToBeginningOfLine()
	case kilo.KeyEnd:
		e.MoveToEndOfLine()
	case kilo.KeyPgup:
		e.PageUp()
	case kilo.KeyPgdn:
		e.PageDown()
	case kilo.KeyArrowUp:
		e.MoveCursor(kilo.MoveUp)
	case kilo.KeyArrowDown:
		e.MoveCursor(kilo.MoveDown)
	case kilo.KeyArrowLeft:
		e.MoveCursor(kilo.MoveLeft)
	case kilo.KeyArrowRight:
		e.MoveCursor(kilo.MoveRight)
	}
}
