package ratesheet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_rates.json
var defaultDocument []byte

// DefaultDocument returns a copy of the embedded rate sheet.
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// Default builds the embedded card. It panics only if the embedded document
// is broken, which the package tests guard against.
func Default() *Sheet {
	s, err := Load(defaultDocument, DefaultCardName)
	if err != nil {
		panic(fmt.Sprintf("ratesheet: embedded document: %v", err))
	}
	return s
}

// LoadFile reads a JSON or YAML rate sheet from path. An empty path selects
// the embedded document.
func LoadFile(path, cardName string) (*Sheet, error) {
	if path == "" {
		return Load(defaultDocument, cardName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate sheet: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	return Load(data, cardName)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return json.Marshal(doc)
}
