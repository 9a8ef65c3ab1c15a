package filets

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// FileExists reports whether an entry exists at path. It does not
// distinguish files from directories and swallows every error to false;
// a permission failure is indistinguishable from absence here.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadTextFile reads the file at path as UTF-8 text.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", wrap(KindFileRead, path, err)
	}
	return string(data), nil
}

// WriteTextFile writes content to path, creating the parent directory and
// overwriting any existing file.
func WriteTextFile(path, content string) error {
	if err := ensureParent(path); err != nil {
		return wrap(KindFileWrite, path, err)
	}
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return wrap(KindFileWrite, path, err)
	}
	log.Debug("wrote file", zap.String("path", path), zap.Int("size", len(content)))
	return nil
}

// AppendTextFile appends content to path, creating the parent directory and
// the file itself if absent.
func AppendTextFile(path, content string) error {
	if err := ensureParent(path); err != nil {
		return wrap(KindFileAppend, path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return wrap(KindFileAppend, path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return wrap(KindFileAppend, path, err)
	}
	if err := f.Close(); err != nil {
		return wrap(KindFileAppend, path, err)
	}
	return nil
}

// ReadLines reads the file at path as a slice of lines. Carriage returns
// are stripped and a trailing newline does not produce an empty final line.
func ReadLines(path string) ([]string, error) {
	content, err := ReadTextFile(path)
	if err != nil {
		return nil, err
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

// WriteLines writes lines to path joined by newlines.
func WriteLines(path string, lines []string) error {
	return WriteTextFile(path, strings.Join(lines, "\n"))
}

// WriteJSONFile serializes v as pretty-printed JSON (2-space indent) and
// writes it to path, creating the parent directory if needed.
func WriteJSONFile(path string, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return wrap(KindJSONWrite, path, err)
	}
	if err := ensureParent(path); err != nil {
		return wrap(KindJSONWrite, path, err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return wrap(KindJSONWrite, path, err)
	}
	log.Debug("wrote json file", zap.String("path", path), zap.Int("size", len(data)))
	return nil
}

// ReadJSONFile reads the file at path and unmarshals it into v. Read and
// parse failures are wrapped alike.
func ReadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrap(KindJSONRead, path, err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return wrap(KindJSONRead, path, err)
	}
	return nil
}
