package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes the YAML file at path into v and then applies environment
// variables on top, so a variable that is set always wins over the file.
// Unknown YAML keys are rejected. An empty file leaves v unchanged before the
// environment overlay.
//
// Fields carrying an envDefault tag are reset to that default when the
// variable is unset, which hides the file value; file-backed structs should
// rely on zero values instead.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := decodeYAML(data, v); err != nil {
		return errors.Join(ErrReadingFile, fmt.Errorf("%s: %w", path, err))
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoadFile works like LoadFile but panics on failure.
func MustLoadFile[T any](path string, v *T) {
	if err := LoadFile(path, v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration file: %v", err))
	}
}

func decodeYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
