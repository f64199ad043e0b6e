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
	"errors"
	"fmt"
	"io"

	"github.com/steelseries/golisp"

	kilo "github.com/timburks/kilo/types"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// bindLisp makes the editor commands available to lisp. golisp keeps
// primitives in a single global table, so the most recent commander
// to evaluate a script owns them.
func (c *Commander) bindLisp() {
	golisp.MakePrimitiveFunction("cursor-up", "0|1", c.move(kilo.MoveUp))
	golisp.MakePrimitiveFunction("cursor-down", "0|1", c.move(kilo.MoveDown))
	golisp.MakePrimitiveFunction("cursor-left", "0|1", c.move(kilo.MoveLeft))
	golisp.MakePrimitiveFunction("cursor-right", "0|1", c.move(kilo.MoveRight))
	golisp.MakePrimitiveFunction("page-up", "0", c.command(c.editor.PageUp))
	golisp.MakePrimitiveFunction("page-down", "0", c.command(c.editor.PageDown))
	golisp.MakePrimitiveFunction("line-start", "0", c.command(c.editor.MoveToBeginningOfLine))
	golisp.MakePrimitiveFunction("line-end", "0", c.command(c.editor.MoveToEndOfLine))
	golisp.MakePrimitiveFunction("cursor-row", "0", c.value(func() int { return c.editor.GetCursor().Row }))
	golisp.MakePrimitiveFunction("cursor-col", "0", c.value(func() int { return c.editor.GetCursor().Col }))
	golisp.MakePrimitiveFunction("row-count", "0", c.value(c.editor.GetRowCount))
}

func (c *Commander) move(direction int) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		n, err := count(args)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			c.editor.MoveCursor(direction)
		}
		return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row)), nil
	}
}

func (c *Commander) command(f func()) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		f()
		return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row)), nil
	}
}

func (c *Commander) value(f func() int) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(f())), nil
	}
}

// count reads the optional repeat count of a movement.
func count(args *golisp.Data) (int, error) {
	if golisp.Length(args) == 0 {
		return 1, nil
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	}
	return 0, errors.New("movement count must be a number")
}

// ParseEval evaluates a lisp expression against the editor and returns
// the printed value of the result.
func (c *Commander) ParseEval(command string) (string, error) {
	c.bindLisp()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// RunScript evaluates script and then prints the screen it leaves
// behind to w, followed by the cursor position and the script's value.
func (c *Commander) RunScript(w io.Writer, script string) error {
	result, err := c.ParseEval(script)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	e := c.editor
	e.Scroll()
	for _, line := range e.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	cursor := e.GetCursor()
	_, err = fmt.Fprintf(w, "cursor %d,%d => %s\n", cursor.Row, cursor.Col, result)
	return err
}
