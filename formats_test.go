package filets_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joemaddalone/filets"
)

// TestYAMLFileRoundTrip tests YAML serialization through the filesystem
func TestYAMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")

	type conf struct {
		Name    string   `yaml:"name"`
		Port    int      `yaml:"port"`
		Targets []string `yaml:"targets"`
	}
	in := conf{Name: "svc", Port: 8080, Targets: []string{"a", "b"}}

	require.NoError(t, filets.WriteYAMLFile(path, in))

	var out conf
	require.NoError(t, filets.ReadYAMLFile(path, &out))
	assert.Equal(t, in, out)
}

// TestReadYAMLFileErrors tests uniform wrapping
func TestReadYAMLFileErrors(t *testing.T) {
	dir := t.TempDir()

	var out interface{}
	err := filets.ReadYAMLFile(filepath.Join(dir, "absent.yaml"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read yaml failed")
}

// TestTOMLFileRoundTrip tests TOML serialization through the filesystem
func TestTOMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.toml")

	type conf struct {
		Title   string `toml:"title"`
		Retries int    `toml:"retries"`
	}
	in := conf{Title: "demo", Retries: 3}

	require.NoError(t, filets.WriteTOMLFile(path, in))

	var out conf
	require.NoError(t, filets.ReadTOMLFile(path, &out))
	assert.Equal(t, in, out)
}

// TestCSVFileRoundTrip tests record-level CSV I/O
func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")

	in := [][]string{
		{"name", "count"},
		{"alpha", "1"},
		{"beta, with comma", "2"},
	}
	require.NoError(t, filets.WriteCSVFile(path, in))

	out, err := filets.ReadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestReadCSVFileMalformed tests parse failure wrapping
func TestReadCSVFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, filets.WriteTextFile(path, "a,\"unterminated\n"))

	_, err := filets.ReadCSVFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read csv failed")
}
