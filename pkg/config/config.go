// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config holds defaults for a copy run. Command line flags override it.
type Config struct {
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`   // Doublestar patterns to leave out
	Jobs    int      `json:"jobs,omitempty" yaml:"jobs,omitempty" hcl:"jobs,optional"`             // Directories copied at once
	Debug   bool     `json:"debug,omitempty" yaml:"debug,omitempty" hcl:"debug,optional"`          // Enable debug logging
	NoColor bool     `json:"no_color,omitempty" yaml:"no_color,omitempty" hcl:"no_color,optional"` // Disable colored output

	location string
}

// 🏭 Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{Jobs: 1}
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	for i, pattern := range cfg.Exclude {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			return errors.Errorf("exclude[%d] is empty", i)
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude[%d]: invalid pattern %q", i, pattern)
		}
		cfg.Exclude[i] = pattern
	}

	return nil
}

// Location returns the file the configuration was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("jobs=%d exclude=%v debug=%t no_color=%t", cfg.Jobs, cfg.Exclude, cfg.Debug, cfg.NoColor)
}
