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
	"fmt"
	"io"

	kilo "github.com/timburks/kilo/types"
)

// A Decoder reads key events from raw terminal input.
//
// The reader is expected to behave like a raw-mode terminal: a read
// that times out returns zero bytes and a nil error.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey waits for the next key. Escape sequences for the navigation
// keys are decoded; a sequence that is cut short or not recognized
// becomes KeyEsc. Only a failed read of the first byte is an error.
func (d *Decoder) ReadKey() (kilo.Event, error) {
	var c byte
	for {
		n, err := d.r.Read(d.buf[:])
		if n == 1 {
			c = d.buf[0]
			break
		}
		if err != nil {
			return kilo.Event{}, fmt.Errorf("read: %w", err)
		}
	}
	if c != escape {
		return kilo.Event{Key: kilo.KeyRune, Ch: rune(c)}, nil
	}
	return d.readEscape(), nil
}

func (d *Decoder) readEscape() kilo.Event {
	unresolved := kilo.Event{Key: kilo.KeyEsc, Ch: escape}

	first, ok := d.next()
	if !ok {
		return unresolved
	}
	second, ok := d.next()
	if !ok {
		return unresolved
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, ok := d.next()
			if !ok || third != '~' {
				return unresolved
			}
			if key, ok := tildeKeys[second]; ok {
				return kilo.Event{Key: key}
			}
			return unresolved
		}
		if key, ok := csiKeys[second]; ok {
			return kilo.Event{Key: key}
		}
	case 'O':
		if key, ok := ss3Keys[second]; ok {
			return kilo.Event{Key: key}
		}
	}
	return unresolved
}

// next reads one more byte of a sequence.
func (d *Decoder) next() (byte, bool) {
	if n, _ := d.r.Read(d.buf[:]); n != 1 {
		return 0, false
	}
	return d.buf[0], true
}

// ESC [ digit ~
var tildeKeys = map[byte]kilo.Key{
	'1': kilo.KeyHome,
	'3': kilo.KeyDelete,
	'4': kilo.KeyEnd,
	'5': kilo.KeyPgup,
	'6': kilo.KeyPgdn,
	'7': kilo.KeyHome,
	'8': kilo.KeyEnd,
}

// ESC [ letter
var csiKeys = map[byte]kilo.Key{
	'A': kilo.KeyArrowUp,
	'B': kilo.KeyArrowDown,
	'C': kilo.KeyArrowRight,
	'D': kilo.KeyArrowLeft,
	'H': kilo.KeyHome,
	'F': kilo.KeyEnd,
}

// ESC O letter
var ss3Keys = map[byte]kilo.Key{
	'H': kilo.KeyHome,
	'F': kilo.KeyEnd,
}
