// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argdefs loads argument definitions from TOML, YAML or JSON files.
package argdefs

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/fileutil"
	"github.com/yeetrun/argparse/pkg/ftdetect"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the newest file version this package understands.
const CurrentVersion = 1

// FileNames are the names Find looks for, in order of preference.
var FileNames = []string{"argq.toml", "argq.yaml", "argq.yml", "argq.json"}

// ErrVersion is returned when a file needs a newer tool or a newer schema.
var ErrVersion = errors.New("unsupported definitions version")

type File struct {
	Version    int        `toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`
	MinVersion string     `toml:"min_version,omitempty" yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Program    string     `toml:"program,omitempty" yaml:"program,omitempty" json:"program,omitempty"`
	Options    string     `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
	Arguments  []Argument `toml:"arguments,omitempty" yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

type Argument struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Type        string   `toml:"type" yaml:"type" json:"type"`
	Aliases     []string `toml:"aliases,omitempty" yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Usage       string   `toml:"usage,omitempty" yaml:"usage,omitempty" json:"usage,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Default     any      `toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
}

// Load reads the definitions file at path. The encoding is detected from
// the extension or, failing that, the content.
func Load(path string) (*File, error) {
	ft, err := ftdetect.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := Decode(f, ft)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Printf("Loaded %d argument definitions from %s", len(defs.Arguments), path)
	return defs, nil
}

// Decode reads a definitions file encoded as ft.
func Decode(r io.Reader, ft ftdetect.FileType) (*File, error) {
	var f File
	var err error
	switch ft {
	case ftdetect.TOML:
		_, err = toml.NewDecoder(r).Decode(&f)
	case ftdetect.YAML:
		err = yaml.NewDecoder(r).Decode(&f)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case ftdetect.JSON:
		err = json.NewDecoder(r).Decode(&f)
	default:
		return nil, fmt.Errorf("unsupported file type: %v", ft)
	}
	if err != nil {
		return nil, err
	}
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if f.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: file version %d, newest supported is %d", ErrVersion, f.Version, CurrentVersion)
	}
	return &f, nil
}

// Find walks up from startDir and returns the first definitions file found.
// It returns os.ErrNotExist when there is none.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Save writes f to path as TOML.
func Save(path string, f *File) error {
	if f == nil {
		return nil
	}
	if f.Version == 0 {
		f.Version = CurrentVersion
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(f)
	})
}

// CheckVersion returns ErrVersion if toolVersion is older than the file's
// min_version.
func CheckVersion(f *File, toolVersion string) error {
	if f == nil || f.MinVersion == "" {
		return nil
	}
	floor, err := semver.NewVersion(f.MinVersion)
	if err != nil {
		return fmt.Errorf("invalid min_version %q: %w", f.MinVersion, err)
	}
	cur, err := semver.NewVersion(toolVersion)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", toolVersion, err)
	}
	if cur.LessThan(floor) {
		return fmt.Errorf("%w: definitions need %s or newer, running %s", ErrVersion, floor, cur)
	}
	return nil
}

// Definitions converts the file's arguments into parser definitions.
func (f *File) Definitions() ([]argparse.Definition, error) {
	var errs []error
	defs := make([]argparse.Definition, 0, len(f.Arguments))
	for _, a := range f.Arguments {
		d, err := a.Definition()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, d)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return defs, nil
}

// Parser returns a parser with every argument of f registered.
func (f *File) Parser(opts ...argparse.Option) (*argparse.Parser, error) {
	defs, err := f.Definitions()
	if err != nil {
		return nil, err
	}
	return argparse.New(append(opts, argparse.WithDefinitions(defs...))...), nil
}

// Help renders help text for p. Program and Options left empty in opts are
// taken from the file.
func (f *File) Help(p *argparse.Parser, opts argparse.HelpOptions) string {
	opts.Program = cmp.Or(opts.Program, f.Program)
	opts.Options = cmp.Or(opts.Options, f.Options)
	return p.Help(opts)
}

// Definition converts a into a validated parser definition. Decoded
// defaults are normalised to the Go types the parser produces.
func (a Argument) Definition() (argparse.Definition, error) {
	d := argparse.Definition{
		Type:              argparse.Type(a.Type),
		Name:              a.Name,
		Aliases:           a.Aliases,
		UsageVariableName: a.Usage,
		Description:       a.Description,
	}
	if !d.Type.Valid() {
		return d, &argparse.UnsupportedTypeError{Name: a.Name, Type: d.Type}
	}
	if a.Default != nil {
		v, err := normalize(d.Type, a.Default)
		if err != nil {
			return d, fmt.Errorf("%w: %s: %v", argparse.ErrInvalidDefault, a.Name, err)
		}
		d.Default = v
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Conflicts describes every name or alias claimed by more than one
// definition. Lookups resolve such keys to the earliest definition.
func Conflicts(defs []argparse.Definition) []string {
	owner := make(map[string]string)
	var out []string
	claim := func(key, name string) {
		if prev, ok := owner[key]; ok {
			out = append(out, fmt.Sprintf("%q of %s is already used by %s", key, name, prev))
			return
		}
		owner[key] = name
	}
	for _, d := range defs {
		claim(d.Name, d.Name)
		for _, a := range d.Aliases {
			if a == d.Name {
				continue
			}
			claim(a, d.Name)
		}
	}
	return out
}
