// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"time"
)

type Data struct {
	// File is the transactions document opened when no --data flag is given.
	// JSON or YAML, optionally gzip-compressed.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

type Display struct {
	// Timezone is an IANA time zone name used to parse and display dates.
	// Defaults to the local time zone.
	Timezone string `yaml:"timezone,omitempty" json:"timezone,omitempty"`

	// Mouse, when set to `false`, disables mouse support in the table view.
	Mouse *bool `yaml:"mouse,omitempty" json:"mouse,omitempty"`
}

type Log struct {
	// Verbosity is the default value of --log-verbosity
	Verbosity *int `yaml:"verbosity,omitempty" json:"verbosity,omitempty"`

	// File is the default value of --log-file
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

type Config struct {
	Data    *Data    `yaml:"data,omitempty" json:"data,omitempty"`
	Display *Display `yaml:"display,omitempty" json:"display,omitempty"`
	Log     *Log     `yaml:"log,omitempty" json:"log,omitempty"`
}

func (c *Config) DataFile() string {
	if c.Data != nil {
		return c.Data.File
	}
	return ""
}

// Location loads the configured time zone, or time.Local if none is set
func (c *Config) Location() (*time.Location, error) {
	if c.Display == nil || c.Display.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

func (c *Config) MouseEnabled() bool {
	if c.Display != nil && c.Display.Mouse != nil {
		return *c.Display.Mouse
	}
	return true
}

func (c *Config) LogVerbosity() int {
	if c.Log != nil && c.Log.Verbosity != nil {
		return *c.Log.Verbosity
	}
	return 0
}

func (c *Config) LogFile() string {
	if c.Log != nil {
		return c.Log.File
	}
	return ""
}
