package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "https://github.com/idilsaglam/todoboard/config.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Problem is one schema violation.
type Problem struct {
	Path    string // dotted path, empty for the document root
	Message string
}

// ValidationError lists the schema violations of a config file.
type ValidationError struct {
	File     string
	Problems []Problem
	Err      error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Path == "" {
			parts = append(parts, p.Message)
			continue
		}
		parts = append(parts, p.Path+": "+p.Message)
	}
	return fmt.Sprintf("invalid config %s: %s", e.File, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateFile checks a TOML config file against the embedded schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return validate(path, data)
}

func validate(name string, data []byte) error {
	doc := map[string]any{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return fmt.Errorf("parse config %s: %w", name, err)
	}

	// TOML integers decode as int64; round-trip through JSON so the
	// validator sees plain JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var inst any
	if err := json.Unmarshal(raw, &inst); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	s, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := s.Validate(inst); err != nil {
		verr := &ValidationError{File: name, Err: err}
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			collectProblems(&verr.Problems, ve)
		} else {
			verr.Problems = append(verr.Problems, Problem{Message: err.Error()})
		}
		return verr
	}
	return nil
}

func collectProblems(out *[]Problem, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Problem{
			Path:    pointerToPath(ve.InstanceLocation),
			Message: ve.Message,
		})
		return
	}
	for _, c := range ve.Causes {
		collectProblems(out, c)
	}
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
