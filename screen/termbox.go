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
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	kilo "github.com/timburks/kilo/types"
)

// A TermboxScreen draws through termbox, which manages the terminal
// mode and key decoding itself.
type TermboxScreen struct{}

func NewTermboxScreen() (*TermboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &TermboxScreen{}, nil
}

func (s *TermboxScreen) Close() error {
	termbox.Close()
	return nil
}

func (s *TermboxScreen) Render(v kilo.Viewer) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	var size kilo.Size
	size.Cols, size.Rows = termbox.Size()
	v.SetSize(size)
	v.Scroll()
	for y, line := range v.Lines() {
		x := 0
		for _, ch := range line {
			termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
			x += runewidth.RuneWidth(ch)
		}
	}
	cursor := v.ScreenCursor()
	termbox.SetCursor(cursor.Col, cursor.Row)
	return termbox.Flush()
}

// ReadKey waits for a key. A resize is reported as KeyUnsupported so
// that the caller redraws at the new size.
func (s *TermboxScreen) ReadKey() (kilo.Event, error) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			return event(ev), nil
		case termbox.EventResize:
			return kilo.Event{Key: kilo.KeyUnsupported}, nil
		case termbox.EventError:
			return kilo.Event{}, fmt.Errorf("read: %w", ev.Err)
		}
	}
}

func event(ev termbox.Event) kilo.Event {
	if ev.Ch != 0 {
		return kilo.Event{Key: kilo.KeyRune, Ch: ev.Ch}
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return kilo.Event{Key: kilo.KeyArrowUp}
	case termbox.KeyArrowDown:
		return kilo.Event{Key: kilo.KeyArrowDown}
	case termbox.KeyArrowLeft:
		return kilo.Event{Key: kilo.KeyArrowLeft}
	case termbox.KeyArrowRight:
		return kilo.Event{Key: kilo.KeyArrowRight}
	case termbox.KeyPgup:
		return kilo.Event{Key: kilo.KeyPgup}
	case termbox.KeyPgdn:
		return kilo.Event{Key: kilo.KeyPgdn}
	case termbox.KeyHome:
		return kilo.Event{Key: kilo.KeyHome}
	case termbox.KeyEnd:
		return kilo.Event{Key: kilo.KeyEnd}
	case termbox.KeyDelete:
		return kilo.Event{Key: kilo.KeyDelete}
	case termbox.KeyEsc:
		return kilo.Event{Key: kilo.KeyEsc, Ch: 0x1b}
	}
	// control keys and space carry their byte value
	if ev.Key < 0x80 {
		return kilo.Event{Key: kilo.KeyRune, Ch: rune(ev.Key)}
	}
	return kilo.Event{Key: kilo.KeyUnsupported}
}
