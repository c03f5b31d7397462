// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/shade/colors"
	"cogentcore.org/shade/colors/symbolic"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk schema shared by all theme file formats.
// Colors are stored as an ordered list so that registration order
// survives a round trip.
type themeFile struct {
	Name   string       `json:"name" toml:"name" yaml:"name"`
	Colors []themeColor `json:"colors" toml:"colors" yaml:"colors"`
}

type themeColor struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Color string `json:"color" toml:"color" yaml:"color"`
}

// Open loads the theme from the given file, replacing the current
// contents. The format is determined by the file extension: .toml,
// .yaml / .yml, or .json. Color values are literal: hex strings
// ("#rrggbb" or "#rrggbbaa") or standard CSS color names. Computed
// color expressions are registered programmatically, not loaded from
// files.
func (th *Theme) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	f := &themeFile{}
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(b, f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, f)
	case ".json":
		err = json.Unmarshal(b, f)
	default:
		return fmt.Errorf("theme.Open: unrecognized file extension %q in %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("theme.Open: %q: %w", filename, err)
	}
	nt := New(f.Name)
	for _, tc := range f.Colors {
		c, err := parseLiteral(tc.Color)
		if err != nil {
			return fmt.Errorf("theme.Open: color %q: %w", tc.Name, err)
		}
		nt.SetLiteral(tc.Name, c)
	}
	th.Name = nt.Name
	th.Colors = nt.Colors
	th.indexes = nt.indexes
	return nil
}

// Save writes the theme to the given file, in the format determined
// by the file extension as in [Theme.Open]. Only literal colors can
// be saved; a theme containing computed expressions returns an error.
func (th *Theme) Save(filename string) error {
	f := &themeFile{Name: th.Name, Colors: make([]themeColor, 0, len(th.Colors))}
	for _, nc := range th.Colors {
		lit, ok := nc.Color.(*symbolic.Literal)
		if !ok {
			return fmt.Errorf("theme.Save: color %q is a computed expression (%s), only literal colors can be saved", nc.Name, nc.Color)
		}
		f.Colors = append(f.Colors, themeColor{Name: nc.Name, Color: colors.AsHex(lit.Color)})
	}
	var b []byte
	var err error
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		b, err = toml.Marshal(f)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(f)
	case ".json":
		b, err = json.MarshalIndent(f, "", "\t")
	default:
		return fmt.Errorf("theme.Save: unrecognized file extension %q in %q", ext, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o666)
}

// parseLiteral parses a literal theme file color value: a hex string
// or a standard CSS color name.
func parseLiteral(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colors.FromHex(s)
	}
	return colors.FromName(s)
}
