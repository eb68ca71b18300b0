// Package config loads the user's persistent settings from ~/.school.yaml
// through the strict schema loader, so a typo in the settings file is
// reported with its field path instead of silently misbehaving.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"school/pkg/schema"
)

// Type describes one kind of course (lecture, lab, ...) and how it renders.
type Type struct {
	Name     string
	Color    int  // 256-color index used for the course name in tables
	Homework bool // whether this kind of course hands out homework
}

// Config holds all user-defined persistent settings.
type Config struct {
	Courses string   // folder the per-course files live in
	Browser []string // handler argv for opening course websites
	Editor  []string // handler argv for opening course notes
	Files   []string // handler argv for opening course folders
	Types   []Type
}

// Default returns the settings used when ~/.school.yaml is absent or leaves
// fields unset.
func Default() *Config {
	return &Config{
		Courses: "courses",
		Browser: []string{"firefox"},
		Editor:  []string{"vim"},
		Files:   []string{"ranger"},
		Types: []Type{
			{Name: "lecture", Color: 39},
			{Name: "lab", Color: 118, Homework: true},
		},
	}
}

// Schema declares the strict shape of the settings document. Every field is
// optional so an empty or missing file falls back to defaults.
func Schema() schema.Record {
	handler := schema.Sequence{Elem: schema.Scalar{Kind: schema.String}}

	return schema.Record{Fields: []schema.Field{
		{Name: "courses", Shape: schema.Scalar{Kind: schema.String}, Optional: true},
		{Name: "browser", Shape: handler, Optional: true},
		{Name: "editor", Shape: handler, Optional: true},
		{Name: "files", Shape: handler, Optional: true},
		{Name: "types", Shape: schema.Sequence{Elem: schema.Record{Fields: []schema.Field{
			{Name: "name", Shape: schema.Scalar{Kind: schema.String}},
			{Name: "color", Shape: schema.Scalar{Kind: schema.Number}},
			{Name: "homework", Shape: schema.Scalar{Kind: schema.Bool}, Optional: true},
		}}}, Optional: true},
	}}
}

// configPath returns the absolute path to ~/.school.yaml
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".school.yaml"), nil
}

// Load reads the settings from disk. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	v, err := schema.LoadFile(path, Schema())
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if s := v.Field("courses"); !s.Empty() {
		cfg.Courses = s.Str()
	}
	if s := v.Field("browser"); !s.Empty() {
		cfg.Browser = argv(s)
	}
	if s := v.Field("editor"); !s.Empty() {
		cfg.Editor = argv(s)
	}
	if s := v.Field("files"); !s.Empty() {
		cfg.Files = argv(s)
	}
	if s := v.Field("types"); !s.Empty() {
		var types []Type
		for _, t := range s.Seq() {
			types = append(types, Type{
				Name:     t.Field("name").Str(),
				Color:    t.Field("color").Int(),
				Homework: t.Field("homework").Bool(),
			})
		}
		cfg.Types = types
	}
	return cfg, nil
}

// TypeNamed returns the configured course type with the given name.
func (c *Config) TypeNamed(name string) (Type, bool) {
	for _, t := range c.Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}

func argv(v schema.Value) []string {
	var args []string
	for _, e := range v.Seq() {
		args = append(args, e.Str())
	}
	return args
}
