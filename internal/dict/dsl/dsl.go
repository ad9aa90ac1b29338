// Package dsl reads ABBYY Lingvo DSL source files into plain-text entries.
package dsl

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sagerenn/lexi/internal/dict"
)

var (
	tagRe     = regexp.MustCompile(`\[/?[^\[\]]*\]`)
	escapedRe = regexp.MustCompile(`\\([\[\]{}~@\\])`)
)

func Load(path string) ([]dict.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read parses DSL text. Lingvo sources are frequently UTF-16 with a BOM;
// the BOM selects the decoder and UTF-8 is assumed otherwise.
func Read(r io.Reader) ([]dict.Entry, error) {
	dec := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, dec))

	var (
		entries     []dict.Entry
		headwords   []string
		defLines    []string
		inHeadwords bool
	)
	flush := func() {
		def := strings.TrimSpace(strings.Join(defLines, "\n"))
		if def != "" {
			for _, w := range headwords {
				entries = append(entries, dict.Entry{Word: w, Definition: def})
			}
		}
		headwords = nil
		defLines = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			inHeadwords = false
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if len(headwords) == 0 {
				continue
			}
			inHeadwords = false
			if text := plain(line); text != "" {
				defLines = append(defLines, text)
			}
			continue
		}
		// Consecutive headword lines share the card that follows them.
		if !inHeadwords {
			flush()
		}
		inHeadwords = true
		headwords = append(headwords, headword(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}

var (
	hideBrackets    = strings.NewReplacer(`\[`, "\x00", `\]`, "\x01")
	restoreBrackets = strings.NewReplacer("\x00", "[", "\x01", "]")
)

// plain strips DSL markup. Escaped brackets are hidden from the tag
// pattern and restored afterwards.
func plain(line string) string {
	s := hideBrackets.Replace(strings.TrimSpace(line))
	s = tagRe.ReplaceAllString(s, "")
	s = restoreBrackets.Replace(s)
	s = escapedRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// headword drops the unsorted-part braces, keeping their content.
func headword(line string) string {
	s := strings.NewReplacer("{", "", "}", "").Replace(line)
	return strings.TrimSpace(escapedRe.ReplaceAllString(s, "$1"))
}
