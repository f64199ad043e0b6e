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
//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// A Session holds a terminal in raw mode. The attributes captured by
// Open are put back by Close, which is safe to call more than once and
// from any exit path; only the first call has an effect.
type Session struct {
	in       *os.File
	out      *os.File
	fd       int
	original unix.Termios

	once       sync.Once
	restoreErr error
}

// Open captures the attributes of in and switches it to raw mode.
// Output is written to out.
func Open(in, out *os.File) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("tcgetattr: %w", ErrNotTerminal)
	}
	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	raw := makeRaw(*original)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &Session{in: in, out: out, fd: fd, original: *original}, nil
}

// makeRaw returns a copy of t with line editing, echo, signal keys,
// flow control, CR translation and output processing turned off. Reads
// return after a tenth of a second even when no byte has arrived.
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}

// Fd returns the input descriptor.
func (s *Session) Fd() int {
	return s.fd
}

// Read reads raw input. A read that times out with nothing available
// returns 0, nil.
func (s *Session) Read(p []byte) (int, error) {
	n, err := unix.Read(s.fd, p)
	if err == unix.EAGAIN || err == unix.EINTR {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Close clears the screen and restores the original attributes. The
// attributes are restored even when clearing fails.
func (s *Session) Close() error {
	s.once.Do(func() {
		clearErr := ClearScreen(s.out)
		if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.original); err != nil {
			s.restoreErr = fmt.Errorf("tcsetattr: %w", err)
		} else if clearErr != nil {
			s.restoreErr = fmt.Errorf("write: %w", clearErr)
		}
	})
	return s.restoreErr
}
