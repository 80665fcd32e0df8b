package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Construct names with their own options section.
const (
	ConstructImports   = "imports"
	ConstructConstants = "constants"
	ConstructVariables = "variables"
	ConstructLiterals  = "literals"
)

// File is a config file: shared settings and per-construct overrides.
type File struct {
	Settings  Options `yaml:"settings"  toml:"settings"`
	Imports   Options `yaml:"imports"   toml:"imports"`
	Constants Options `yaml:"constants" toml:"constants"`
	Variables Options `yaml:"variables" toml:"variables"`
	Literals  Options `yaml:"literals"  toml:"literals"`
}

// For returns resolved options of the construct.
func (f *File) For(construct string) (Options, error) {
	return f.ForBase(construct, Defaults())
}

// ForBase returns options of the construct resolved over the given base instead of the defaults.
func (f *File) ForBase(construct string, base Options) (Options, error) {
	var override Options
	switch construct {
	case ConstructImports:
		override = f.Imports
	case ConstructConstants:
		override = f.Constants
	case ConstructVariables:
		override = f.Variables
	case ConstructLiterals:
		override = f.Literals
	default:
		return Options{}, newError(ErrCodeInvalidOption, "unknown construct %q", construct)
	}

	res := Resolve(base, f.Settings, override)
	if err := Validate(res); err != nil {
		return Options{}, fmt.Errorf("%s: %w", construct, err)
	}

	return res, nil
}

// Load reads a config file. The format is chosen by extension: .yaml, .yml or .toml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrCodeInvalidConfigFile, err, "read %s", path)
	}

	return Parse(filepath.Ext(path), data)
}

// Parse decodes config data of the format given by the extension.
func Parse(ext string, data []byte) (*File, error) {
	var f File
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, wrapError(ErrCodeInvalidConfigFile, err, "decode yaml")
		}

	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, wrapError(ErrCodeInvalidConfigFile, err, "decode toml")
		}

	default:
		return nil, newError(ErrCodeInvalidConfigFile, "unsupported config format %q", ext)
	}

	return &f, nil
}
