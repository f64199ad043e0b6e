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

import "bytes"

// A row of text in the buffer, stored exactly as it was read.
type Row struct {
	Text []byte
}

func NewRow(text []byte) *Row {
	return &Row{Text: bytes.Clone(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

// DisplayText returns the row as it is drawn, with each tab expanded
// to the next multiple of tabStop columns and every other control
// byte shown as '?'.
func (r *Row) DisplayText(tabStop int) string {
	var b bytes.Buffer
	for _, c := range r.Text {
		switch {
		case c == '\t' && tabStop > 0:
			b.WriteByte(' ')
			for b.Len()%tabStop != 0 {
				b.WriteByte(' ')
			}
		case c < 0x20 || c == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
