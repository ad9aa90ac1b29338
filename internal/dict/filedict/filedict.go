package filedict

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagerenn/lexi/internal/dict"
)

// ReadTSV reads one "word<delimiter>definition" pair per line. Blank lines
// and lines starting with '#' are ignored.
func ReadTSV(r io.Reader, delimiter string) ([]dict.Entry, error) {
	if delimiter == "" {
		delimiter = "\t"
	}
	var entries []dict.Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, delimiter)
		if len(parts) < 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		def := strings.TrimSpace(strings.Join(parts[1:], delimiter))
		if word == "" || def == "" {
			continue
		}
		entries = append(entries, dict.Entry{Word: word, Definition: def})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadJSON reads a JSON object mapping words to a definition or a list of
// definitions. The object is streamed so entries keep their source order.
func ReadJSON(r io.Reader) ([]dict.Entry, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty word list")
		}
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("word list must be a JSON object")
	}
	var entries []dict.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		word, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("definition for %q: %w", word, err)
		}
		defs, err := jsonDefinitions(raw)
		if err != nil {
			return nil, fmt.Errorf("definition for %q: %w", word, err)
		}
		for _, def := range defs {
			entries = append(entries, dict.Entry{Word: word, Definition: def})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func jsonDefinitions(raw json.RawMessage) ([]string, error) {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	return nil, errors.New("must be a string or a list of strings")
}

// ReadYAML reads a YAML mapping with the same value shapes as ReadJSON.
func ReadYAML(r io.Reader) ([]dict.Entry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty word list")
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("word list must be a YAML mapping")
	}
	entries := make([]dict.Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch val.Kind {
		case yaml.ScalarNode:
			entries = append(entries, dict.Entry{Word: key.Value, Definition: val.Value})
		case yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("definition for %q: line %d: must be a string", key.Value, item.Line)
				}
				entries = append(entries, dict.Entry{Word: key.Value, Definition: item.Value})
			}
		default:
			return nil, fmt.Errorf("definition for %q: line %d: must be a string or a list of strings", key.Value, val.Line)
		}
	}
	return entries, nil
}

// Load opens path and reads it as typ ("json", "yaml", "tsv"). An empty typ
// is resolved from the file extension.
func Load(path, typ, delimiter string) ([]dict.Entry, error) {
	if typ == "" {
		typ = typeFromExt(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(typ) {
	case "json":
		return ReadJSON(f)
	case "yaml", "yml":
		return ReadYAML(f)
	case "tsv", "tab", "txt":
		return ReadTSV(f, delimiter)
	default:
		return nil, errors.New("unsupported dictionary type: " + typ)
	}
}

func typeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".tsv", ".txt":
		return "tsv"
	default:
		return "json"
	}
}
