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
	"fmt"
	"io"
	"strconv"

	"golang.org/x/term"

	kilo "github.com/timburks/kilo/types"
)

var ErrCursorResponse = errors.New("malformed cursor position response")

// Cursor position reports look like ESC [ rows ; cols R and never
// need more than this many bytes.
const maxCursorResponse = 32

// WindowSize returns the size of the terminal on fd. If the size
// cannot be read from the system or has no columns, the cursor is
// pushed into the bottom-right corner through rw and its position is
// asked for instead.
func WindowSize(fd int, rw io.ReadWriter) (kilo.Size, error) {
	cols, rows, err := term.GetSize(fd)
	if err == nil && cols != 0 {
		return kilo.Size{Rows: rows, Cols: cols}, nil
	}
	if _, err := io.WriteString(rw, csiBottomRight); err != nil {
		return kilo.Size{}, fmt.Errorf("getWindowSize: %w", err)
	}
	size, err := CursorPosition(rw)
	if err != nil {
		return kilo.Size{}, fmt.Errorf("getWindowSize: %w", err)
	}
	return size, nil
}

// CursorPosition sends a device status request and reads back the
// one-based cursor position.
func CursorPosition(rw io.ReadWriter) (kilo.Size, error) {
	if _, err := io.WriteString(rw, csiDeviceStatus); err != nil {
		return kilo.Size{}, err
	}
	var response [maxCursorResponse]byte
	var b [1]byte
	n := 0
	for {
		if n == maxCursorResponse-1 {
			return kilo.Size{}, fmt.Errorf("%w: no terminator in %d bytes", ErrCursorResponse, n)
		}
		if m, err := rw.Read(b[:]); m != 1 || err != nil {
			break
		}
		if b[0] == 'R' {
			break
		}
		response[n] = b[0]
		n++
	}
	return parseCursorResponse(response[:n])
}

func parseCursorResponse(b []byte) (kilo.Size, error) {
	if len(b) < 2 || b[0] != escape || b[1] != '[' {
		return kilo.Size{}, fmt.Errorf("%w: %q", ErrCursorResponse, b)
	}
	rowText, colText, ok := bytes.Cut(b[2:], []byte{';'})
	if !ok {
		return kilo.Size{}, fmt.Errorf("%w: %q", ErrCursorResponse, b)
	}
	rows, err := strconv.Atoi(string(rowText))
	if err != nil {
		return kilo.Size{}, fmt.Errorf("%w: %q", ErrCursorResponse, b)
	}
	cols, err := strconv.Atoi(string(colText))
	if err != nil || rows <= 0 || cols <= 0 {
		return kilo.Size{}, fmt.Errorf("%w: %q", ErrCursorResponse, b)
	}
	return kilo.Size{Rows: rows, Cols: cols}, nil
}
