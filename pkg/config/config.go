// Fanzine Core
// Copyright (c) 2026 The Fanzine Index Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Fanzine Core.
//
// Fanzine Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Fanzine Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fanzine Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "FANZINE_CFG"
	CfgFile       = "config.toml"
	LogFile       = "fanzine.log"
)

// Values is the on-disk configuration shape.
type Values struct {
	Parsing      Parsing `toml:"parsing,omitempty"`
	Catalog      Catalog `toml:"catalog,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

// Parsing holds the matcher flags applied to catalog input.
type Parsing struct {
	Strict   bool `toml:"strict"`
	Complete bool `toml:"complete"`
}

// Catalog names the CSV columns the normalizer reads and writes.
type Catalog struct {
	TitleColumn  string `toml:"title_column,omitempty"`
	IssuesColumn string `toml:"issues_column,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Parsing: Parsing{
		Complete: true,
	},
	Catalog: Catalog{
		TitleColumn:  "title",
		IssuesColumn: "issues",
	},
}

// Instance guards a Values behind a lock so the CLI and any future callers
// can read settings concurrently.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

// NewConfig loads the config file from configDir, creating it with defaults
// first if it does not exist. The FANZINE_CFG environment variable
// overrides the path entirely.
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		if err := os.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top, so fields not
	// present in the file keep their default values.
	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// StrictParsing reports whether matchers should reject dubious forms.
func (c *Instance) StrictParsing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Parsing.Strict
}

// CompleteParsing reports whether matchers should require the whole input
// string to be part of the designation.
func (c *Instance) CompleteParsing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Parsing.Complete
}

func (c *Instance) TitleColumn() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.TitleColumn
}

func (c *Instance) IssuesColumn() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Catalog.IssuesColumn
}
