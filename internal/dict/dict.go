package dict

import (
	"strings"
)

type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Store is the loaded word list. Keys are lowercase ASCII letters and keep
// the order in which they first appeared in the source. A Store is never
// modified after Build.
type Store struct {
	words []string
	defs  map[string][]string
}

func (s *Store) Lookup(word string) (string, bool) {
	defs, ok := s.defs[word]
	if !ok {
		return "", false
	}
	return strings.Join(defs, "\n"), true
}

func (s *Store) Contains(word string) bool {
	_, ok := s.defs[word]
	return ok
}

// Words returns the keys in source order.
func (s *Store) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

func (s *Store) Len() int {
	return len(s.words)
}

type Builder struct {
	words   []string
	defs    map[string][]string
	skipped int
}

func NewBuilder() *Builder {
	return &Builder{defs: make(map[string][]string)}
}

// Add folds word to lowercase and records def under it unchanged. It
// reports false when the word is not a single alphabetic token.
func (b *Builder) Add(word, def string) bool {
	key := Normalize(word)
	if !IsWord(key) {
		b.skipped++
		return false
	}
	if _, ok := b.defs[key]; !ok {
		b.words = append(b.words, key)
	}
	b.defs[key] = append(b.defs[key], def)
	return true
}

func (b *Builder) AddAll(entries []Entry) {
	for _, e := range entries {
		b.Add(e.Word, e.Definition)
	}
}

// Skipped is the number of source entries that were dropped.
func (b *Builder) Skipped() int {
	return b.skipped
}

func (b *Builder) Build() *Store {
	s := &Store{
		words: b.words,
		defs:  b.defs,
	}
	b.words = nil
	b.defs = make(map[string][]string)
	return s
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsWord reports whether s is one or more ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
