package words

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// wordFile is the document shape shared by the YAML and JSON formats.
type wordFile struct {
	Words []string `yaml:"words" json:"words"`
}

// Parser turns file contents into raw (unnormalized) words.
type Parser func(data []byte) ([]string, error)

var parsers = map[string]Parser{
	".txt":   ParseText,
	".yaml":  ParseYAML,
	".yml":   ParseYAML,
	".json":  ParseJSON,
	".jsonc": ParseJSON,
}

// FormatExtensions returns the supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml", ".json", ".jsonc"}
}

// Load reads a word list file, picking the parser from its extension.
func Load(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parse, ok := parsers[ext]
	if !ok {
		return nil, fmt.Errorf("words: unsupported format %q for %s (want %s)",
			ext, path, strings.Join(FormatExtensions(), ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}

	list, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", path, err)
	}
	return list, nil
}

// ParseText reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func ParseText(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// ParseYAML reads a document of the form:
//
//	words:
//	  - crane
//	  - slate
func ParseYAML(data []byte) ([]string, error) {
	var f wordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.Words, nil
}

// ParseJSON reads {"words": [...]}. Comments and trailing commas are allowed.
func ParseJSON(data []byte) ([]string, error) {
	var f wordFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return f.Words, nil
}
