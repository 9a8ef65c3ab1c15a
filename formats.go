package filets

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ReadYAMLFile reads the file at path and unmarshals it as YAML into v.
func ReadYAMLFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrap(KindYAMLRead, path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return wrap(KindYAMLRead, path, err)
	}
	return nil
}

// WriteYAMLFile serializes v as YAML and writes it to path, creating the
// parent directory if needed.
func WriteYAMLFile(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return wrap(KindYAMLWrite, path, err)
	}
	if err := ensureParent(path); err != nil {
		return wrap(KindYAMLWrite, path, err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return wrap(KindYAMLWrite, path, err)
	}
	return nil
}

// ReadTOMLFile reads the file at path and unmarshals it as TOML into v.
func ReadTOMLFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrap(KindTOMLRead, path, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return wrap(KindTOMLRead, path, err)
	}
	return nil
}

// WriteTOMLFile serializes v as TOML and writes it to path, creating the
// parent directory if needed.
func WriteTOMLFile(path string, v interface{}) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return wrap(KindTOMLWrite, path, err)
	}
	if err := ensureParent(path); err != nil {
		return wrap(KindTOMLWrite, path, err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return wrap(KindTOMLWrite, path, err)
	}
	return nil
}

// ReadCSVFile reads the file at path and parses it into records.
func ReadCSVFile(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(KindCSVRead, path, err)
	}
	records, err := csv.NewReader(strings.NewReader(string(content))).ReadAll()
	if err != nil {
		return nil, wrap(KindCSVRead, path, err)
	}
	return records, nil
}

// WriteCSVFile writes records to path as CSV, creating the parent directory
// if needed.
func WriteCSVFile(path string, records [][]string) error {
	if err := ensureParent(path); err != nil {
		return wrap(KindCSVWrite, path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return wrap(KindCSVWrite, path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return wrap(KindCSVWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return wrap(KindCSVWrite, path, err)
	}
	return nil
}
