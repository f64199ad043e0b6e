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
	"errors"
	"strings"
	"testing"

	kilo "github.com/timburks/kilo/types"
)

// fakeTerminal answers with a canned response and records what was
// written to it.
type fakeTerminal struct {
	response *strings.Reader
	written  bytes.Buffer
}

func newFakeTerminal(response string) *fakeTerminal {
	return &fakeTerminal{response: strings.NewReader(response)}
}

func (f *fakeTerminal) Read(p []byte) (int, error)  { return f.response.Read(p) }
func (f *fakeTerminal) Write(p []byte) (int, error) { return f.written.Write(p) }

func TestCursorPosition(t *testing.T) {
	f := newFakeTerminal("\x1b[24;80Rleftover")
	size, err := CursorPosition(f)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if size != (kilo.Size{Rows: 24, Cols: 80}) {
		t.Errorf("got %+v, expected 24x80", size)
	}
	if f.written.String() != "\x1b[6n" {
		t.Errorf("wrote %q, expected a device status request", f.written.String())
	}
	if f.response.Len() != len("leftover") {
		t.Errorf("read past the terminator: %d bytes left", f.response.Len())
	}
}

func TestCursorPositionRejectsOverlongResponse(t *testing.T) {
	f := newFakeTerminal("\x1b[" + strings.Repeat("1", 40) + ";80R")
	if _, err := CursorPosition(f); !errors.Is(err, ErrCursorResponse) {
		t.Errorf("got %v, expected %v", err, ErrCursorResponse)
	}
}

func TestParseCursorResponse(t *testing.T) {
	tests := []struct {
		response string
		size     kilo.Size
		ok       bool
	}{
		{"\x1b[24;80", kilo.Size{Rows: 24, Cols: 80}, true},
		{"\x1b[1;1", kilo.Size{Rows: 1, Cols: 1}, true},
		{"\x1b[100;250", kilo.Size{Rows: 100, Cols: 250}, true},
		{"", kilo.Size{}, false},
		{"\x1b", kilo.Size{}, false},
		{"[24;80", kilo.Size{}, false},
		{"\x1bO24;80", kilo.Size{}, false},
		{"\x1b[2480", kilo.Size{}, false},
		{"\x1b[24;", kilo.Size{}, false},
		{"\x1b[a;b", kilo.Size{}, false},
		{"\x1b[0;80", kilo.Size{}, false},
	}
	for _, tt := range tests {
		size, err := parseCursorResponse([]byte(tt.response))
		if tt.ok {
			if err != nil || size != tt.size {
				t.Errorf("%q: got %+v, %v, expected %+v", tt.response, size, err, tt.size)
			}
		} else if !errors.Is(err, ErrCursorResponse) {
			t.Errorf("%q: got %v, expected %v", tt.response, err, ErrCursorResponse)
		}
	}
}
