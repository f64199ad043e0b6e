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
	"io"
	"os"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	kilo "github.com/timburks/kilo/types"
)

// openPty returns both ends of a new pseudo-terminal. Output written to
// the terminal end is drained so that writes never block.
func openPty(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	go io.Copy(io.Discard, ptmx)
	return ptmx, tty
}

func TestMakeRaw(t *testing.T) {
	var cooked unix.Termios
	cooked.Iflag = unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	cooked.Oflag = unix.OPOST
	cooked.Lflag = unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	cooked.Cc[unix.VMIN] = 1

	raw := makeRaw(cooked)
	if raw.Iflag != 0 || raw.Oflag != 0 || raw.Lflag != 0 {
		t.Errorf("flags left on: iflag=%#x oflag=%#x lflag=%#x", raw.Iflag, raw.Oflag, raw.Lflag)
	}
	if raw.Cflag&unix.CS8 != unix.CS8 {
		t.Errorf("8-bit characters not selected")
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("got VMIN=%d VTIME=%d, expected 0 and 1", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
	if cooked.Lflag&unix.ICANON == 0 {
		t.Errorf("makeRaw modified its argument")
	}
}

func TestSessionRestoresAttributes(t *testing.T) {
	_, tty := openPty(t)
	fd := int(tty.Fd())
	before, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}

	s, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	during, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}
	if during.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG) != 0 {
		t.Errorf("terminal still canonical or echoing: lflag=%#x", during.Lflag)
	}
	if during.Cc[unix.VMIN] != 0 || during.Cc[unix.VTIME] != 1 {
		t.Errorf("read policy not set: VMIN=%d VTIME=%d", during.Cc[unix.VMIN], during.Cc[unix.VTIME])
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
	after, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag || after.Oflag != before.Oflag {
		t.Errorf("attributes not restored: before %+v after %+v", before, after)
	}
}

func TestSessionReportsFailedClear(t *testing.T) {
	_, tty := openPty(t)
	fd := int(tty.Fd())
	before, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}
	closed, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	closed.Close()

	s, err := Open(tty, closed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("got %v, expected a write error", err)
	}
	after, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}
	if after.Lflag != before.Lflag {
		t.Errorf("attributes not restored: lflag %#x, expected %#x", after.Lflag, before.Lflag)
	}
}

func TestSessionReadTimesOut(t *testing.T) {
	_, tty := openPty(t)
	s, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	buf := make([]byte, 1)
	n, err := s.Read(buf)
	if n != 0 || err != nil {
		t.Errorf("got %d, %v from an idle terminal, expected 0, nil", n, err)
	}
}

func TestSessionDecodesKeys(t *testing.T) {
	ptmx, tty := openPty(t)
	s, err := Open(tty, tty)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := ptmx.Write([]byte("\x1b[6~")); err != nil {
		t.Fatalf("write: %v", err)
	}
	event, err := NewDecoder(s).ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if event.Key != kilo.KeyPgdn {
		t.Errorf("got %v, expected PageDown", event.Key)
	}
}

func TestOpenRejectsRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := Open(f, f); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("got %v, expected %v", err, ErrNotTerminal)
	}
}

func TestWindowSize(t *testing.T) {
	ptmx, tty := openPty(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("setsize: %v", err)
	}
	size, err := WindowSize(int(tty.Fd()), newFakeTerminal(""))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if size != (kilo.Size{Rows: 24, Cols: 80}) {
		t.Errorf("got %+v, expected 24x80", size)
	}
}

func TestWindowSizeFallsBackToCursorProbe(t *testing.T) {
	ptmx, tty := openPty(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 0, Cols: 0}); err != nil {
		t.Fatalf("setsize: %v", err)
	}
	f := newFakeTerminal("\x1b[30;100R")
	size, err := WindowSize(int(tty.Fd()), f)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if size != (kilo.Size{Rows: 30, Cols: 100}) {
		t.Errorf("got %+v, expected 30x100", size)
	}
	if f.written.String() != "\x1b[999C\x1b[999B\x1b[6n" {
		t.Errorf("wrote %q", f.written.String())
	}
}

func TestWindowSizeProbeFailure(t *testing.T) {
	ptmx, tty := openPty(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 0, Cols: 0}); err != nil {
		t.Fatalf("setsize: %v", err)
	}
	if _, err := WindowSize(int(tty.Fd()), newFakeTerminal("garbage")); !errors.Is(err, ErrCursorResponse) {
		t.Errorf("got %v, expected %v", err, ErrCursorResponse)
	}
}
