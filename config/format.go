// Package config loads and validates the chat formatting document.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// GroupDef declares a permission group for the static group provider:
// its chat weight and the senders that belong to it.
type GroupDef struct {
	Name    string   `yaml:"name" validate:"required"`
	Weight  int      `yaml:"weight" validate:"gte=0"`
	Members []string `yaml:"members" validate:"dive,uuid"`
}

// Format is the chat formatting document. Templates are immutable once
// loaded; callers get copies of nothing and must not mutate the maps.
type Format struct {
	Static        bool              `yaml:"use-static-format"`
	ItemDisplay   bool              `yaml:"use-item-display"`
	Global        string            `yaml:"global-format"`
	GroupFormats  map[string]string `yaml:"group-formats"`
	Groups        []GroupDef        `yaml:"groups" validate:"dive"`
	CensoredWords []string          `yaml:"censored-words"`
	CensorChar    string            `yaml:"censor-replacement"`
}

// Load reads the formatting document at path and validates its structure.
// A blank global format is not rejected here: whether it is fatal depends on
// the resolver in use, so the static resolver reports it at render time.
func Load(path string) (*Format, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read format config: %w", err)
	}

	var format Format
	if err = yaml.Unmarshal(raw, &format); err != nil {
		return nil, fmt.Errorf("parse format config: %w", err)
	}
	if err = validate.Struct(&format); err != nil {
		return nil, fmt.Errorf("invalid format config: %w", err)
	}
	return &format, nil
}

func (f *Format) GlobalFormat() string { return f.Global }

func (f *Format) GroupFormat(group string) (string, bool) {
	format, ok := f.GroupFormats[group]
	return format, ok
}

func (f *Format) UseStaticFormat() bool { return f.Static }

func (f *Format) UseItemDisplay() bool { return f.ItemDisplay }

// CensorRune returns the replacement character for censored words,
// defaulting to '*' when unset.
func (f *Format) CensorRune() (rune, error) {
	if f.CensorChar == "" {
		return '*', nil
	}
	r := []rune(f.CensorChar)
	if len(r) != 1 {
		return 0, fmt.Errorf("'censor-replacement' must be a single character, got %q", f.CensorChar)
	}
	return r[0], nil
}
