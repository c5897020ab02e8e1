// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ftdetect identifies the encoding of argument definition files.
package ftdetect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type FileType int

const (
	Unknown FileType = iota
	TOML
	YAML
	JSON
)

func (t FileType) String() string {
	switch t {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseFileType maps a format name or file extension ("toml", ".yml") to a
// FileType.
func ParseFileType(s string) FileType {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "toml":
		return TOML
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	}
	return Unknown
}

type file struct {
	f    *os.File
	path string
}

// DetectFile returns the encoding of the file at path, first by extension
// and then by content.
func DetectFile(path string) (FileType, error) {
	f, err := newFile(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	return f.detect()
}

// Detect returns the encoding of bs by content alone.
func Detect(bs []byte) FileType {
	switch {
	case isJSON(bs):
		return JSON
	case isTOML(bs):
		return TOML
	case isYAML(bs):
		return YAML
	}
	return Unknown
}

func newFile(path string) (*file, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &file{f: f, path: path}, nil
}

func (f *file) Close() error {
	return f.f.Close()
}

func (f *file) detect() (FileType, error) {
	if ft, ok := f.detectByName(); ok {
		return ft, nil
	}
	if err := f.checkAndSeek0(); err != nil {
		return Unknown, err
	}
	bs, err := io.ReadAll(f.f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read file: %w", err)
	}
	if ft := Detect(bs); ft != Unknown {
		log.Printf("Detected %s content in %s", ft, f.path)
		return ft, nil
	}
	return Unknown, fmt.Errorf("unable to detect file type")
}

func (f *file) detectByName() (FileType, bool) {
	if f.path == "" {
		return Unknown, false
	}
	ft := ParseFileType(filepath.Ext(f.path))
	return ft, ft != Unknown
}

func (f *file) checkAndSeek0() error {
	if f.f == nil {
		return fmt.Errorf("file is nil")
	}
	if _, err := f.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start of file: %w", err)
	}
	return nil
}

func isJSON(bs []byte) bool {
	bs = bytes.TrimSpace(bs)
	if len(bs) == 0 || bs[0] != '{' {
		return false
	}
	return json.Valid(bs)
}

// isTOML requires at least one key so that empty input is not claimed.
func isTOML(bs []byte) bool {
	var m map[string]any
	md, err := toml.Decode(string(bs), &m)
	if err != nil {
		return false
	}
	return len(md.Keys()) > 0
}

// isYAML accepts only documents whose root is a mapping.
func isYAML(bs []byte) bool {
	var n yaml.Node
	if err := yaml.Unmarshal(bs, &n); err != nil {
		return false
	}
	return len(n.Content) == 1 && n.Content[0].Kind == yaml.MappingNode
}
