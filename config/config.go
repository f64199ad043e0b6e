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

// Package config reads the viewer's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings read from the configuration file.
type Config struct {
	Display  string `toml:"display"`   // "terminal" or "termbox"
	LogFile  string `toml:"log_file"`  // empty to discard logs
	TabStop  int    `toml:"tab_stop"`  // columns per tab when drawing
	EvalRows int    `toml:"eval_rows"` // screen size for scripted runs
	EvalCols int    `toml:"eval_cols"`
}

func Default() *Config {
	c := &Config{
		Display:  "terminal",
		TabStop:  8,
		EvalRows: 24,
		EvalCols: 80,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.LogFile = filepath.Join(home, ".kilolog")
	}
	return c
}

// Path returns $KILO_CONFIG, or ~/.kilo.toml when it is unset.
func Path() string {
	if path := os.Getenv("KILO_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kilo.toml")
}

// Load reads the file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Display {
	case "terminal", "termbox":
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if c.TabStop <= 0 {
		return fmt.Errorf("tab_stop must be positive, got %d", c.TabStop)
	}
	if c.EvalRows <= 0 || c.EvalCols <= 0 {
		return fmt.Errorf("eval size must be positive, got %dx%d", c.EvalRows, c.EvalCols)
	}
	return nil
}
