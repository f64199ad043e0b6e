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
package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// A Buffer holds the rows of a file in file order.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	return &Buffer{rows: make([]*Row, 0)}
}

// ReadFile loads path into a new buffer, one row per line.
func ReadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fopen: %w", err)
	}
	defer f.Close()
	b := NewBuffer()
	if err := b.ReadLines(f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b.fileName = path
	return b, nil
}

// ReadLines appends a row for each line of r. Trailing carriage
// returns and newlines are not part of a row.
func (b *Buffer) ReadLines(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			b.AppendRow(trimLineEnding(line))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimLineEnding(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

func (b *Buffer) AppendRow(text []byte) {
	b.rows = append(b.rows, NewRow(text))
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns row i, or nil when i is out of range.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if r := b.GetRow(i); r != nil {
		return r.Length()
	}
	return 0
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}
