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

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/fixuri/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 📍 DefaultPattern is the tree the vscode-uri migration targets when no
// config file overrides it.
const DefaultPattern = "server/src/**/*.ts"

// 🔄 Replacement is an extra literal replacement applied after the
// built-in migration rules.
type Replacement struct {
	Old  string  `json:"old" yaml:"old" hcl:"old"`
	New  string  `json:"new" yaml:"new" hcl:"new"`
	File *string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // optional glob limiting which files
}

// 📚 Config represents the complete configuration. All fields are
// optional; an absent config file means defaults.
type Config struct {
	Patterns     []string      `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
	Debug        bool          `json:"debug,omitempty" yaml:"debug,omitempty" hcl:"debug,optional"`

	location string
}

// 🎯 Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Patterns: []string{DefaultPattern},
	}
}

// 📍 Location returns the path the config was loaded from, or "" for the
// defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Patterns) == 0 {
		return errors.Errorf("at least one pattern is required")
	}
	for _, pattern := range cfg.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid pattern %q", pattern)
		}
	}
	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacement %d: old is required", i)
		}
		if r.File != nil && !doublestar.ValidatePattern(*r.File) {
			return errors.Errorf("replacement %d: invalid file glob %q", i, *r.File)
		}
	}
	return nil
}

// 📋 Rules builds the ordered rule list: the built-in migration rules
// first, configured replacements after, in config order.
func (cfg *Config) Rules() []rewrite.Rule {
	rules := rewrite.MigrationRules()
	for i, r := range cfg.Replacements {
		rule := rewrite.LiteralRule{
			RuleName: fmt.Sprintf("replacement-%d", i),
			Old:      r.Old,
			New:      r.New,
		}
		if r.File != nil {
			rule.FileFilterGlob = *r.File
		}
		rules = append(rules, rule)
	}
	return rules
}
