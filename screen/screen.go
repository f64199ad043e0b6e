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

	kilo "github.com/timburks/kilo/types"
)

// Display names accepted by New.
const (
	DisplayTerminal = "terminal"
	DisplayTermbox  = "termbox"
)

// New opens the named display on the controlling terminal.
func New(display string) (kilo.Screen, error) {
	switch display {
	case DisplayTerminal, "":
		s, err := NewTerminalScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	case DisplayTermbox:
		s, err := NewTermboxScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown display %q", display)
	}
}
