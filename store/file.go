package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// Document is the YAML layout used by [File].
type Document struct {
	Debug string `json:"debug" jsonschema:"enable-spec of the active debug namespaces" yaml:"debug"`
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	return schema.Resolve(nil)
})

// Schema returns the JSON Schema for [Document].
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Document](nil)
	if err != nil {
		return nil, fmt.Errorf("infer document schema: %w", err)
	}

	schema.Title = "obug debug state"
	schema.Required = []string{"debug"}
	schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}

	return schema, nil
}

// Decode validates data against [Schema] and decodes it. Empty input decodes
// to a zero [Document].
func Decode(data []byte) (Document, error) {
	var doc Document

	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var instance any

	err = json.Unmarshal(jsonData, &instance)
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	resolved, err := resolvedSchema()
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	err = json.Unmarshal(jsonData, &doc)
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return doc, nil
}

// Encode renders doc as YAML.
func Encode(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return data, nil
}

// DefaultPath returns the per-user state file, falling back to a file in the
// working directory when no config directory is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "obug.yaml"
	}

	return filepath.Join(dir, "obug", "debug.yaml")
}

// File stores the enable-spec in a YAML [Document] on disk.
type File struct {
	Path string
}

// Load implements [Store]. A missing file is not an error.
func (f File) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoad, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLoad, f.Path, err)
	}

	return doc.Debug, nil
}

// Save implements [Store]. An empty spec removes the file.
func (f File) Save(spec string) error {
	if spec == "" {
		err := os.Remove(f.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrSave, err)
		}

		return nil
	}

	data, err := Encode(Document{Debug: spec})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	err = os.MkdirAll(filepath.Dir(f.Path), 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	err = os.WriteFile(f.Path, data, 0o644) //nolint:gosec // State file is not secret.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	return nil
}
