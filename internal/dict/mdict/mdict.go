package mdict

import (
	"reflect"
	"sort"
	"strings"

	"github.com/ChaosNyaruko/ondict/decoder"
	"github.com/ChaosNyaruko/ondict/util"
	"github.com/k3a/html2text"

	"github.com/sagerenn/lexi/internal/dict"
)

const maxRedirects = 8

type reader struct {
	read     func(offset int) []byte
	keymap   map[string][]uint64
	encoding string
}

// Load decodes an MDX file and renders every record as plain text. Words
// are emitted in sorted order; @@@LINK= records are followed.
func Load(path string) ([]dict.Entry, error) {
	md := &decoder.MDict{}
	if err := md.Decode(path, false); err != nil {
		return nil, err
	}
	_ = md.Keys() // populate keymap
	r := &reader{
		read:     md.ReadAtOffset,
		keymap:   mdictKeyMap(md),
		encoding: mdictEncoding(md),
	}
	return r.entries(), nil
}

func (r *reader) entries() []dict.Entry {
	words := make([]string, 0, len(r.keymap))
	for w := range r.keymap {
		words = append(words, w)
	}
	sort.Strings(words)

	entries := make([]dict.Entry, 0, len(words))
	for _, w := range words {
		for _, def := range r.definitions(w, 0) {
			entries = append(entries, dict.Entry{Word: w, Definition: def})
		}
	}
	return entries
}

func (r *reader) definitions(word string, depth int) []string {
	if depth > maxRedirects {
		return nil
	}
	offs := r.keymap[word]
	out := make([]string, 0, len(offs))
	seen := make(map[string]bool)
	for _, off := range offs {
		raw := validText(decodeArticle(r.read(int(off)), r.encoding))
		var defs []string
		if target := parseRedirect(raw); target != "" {
			defs = r.definitions(target, depth+1)
		} else if text := renderArticle(raw); text != "" {
			defs = []string{text}
		}
		for _, d := range defs {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

func renderArticle(raw string) string {
	return strings.TrimSpace(html2text.HTML2Text(util.ReplaceLINK(raw)))
}

// The decoder keeps its encoding and key index unexported.
func mdictEncoding(m *decoder.MDict) string {
	return encodingField(reflect.ValueOf(m).Elem())
}

func mdictKeyMap(m *decoder.MDict) map[string][]uint64 {
	return keyMapField(reflect.ValueOf(m).Elem())
}

func encodingField(v reflect.Value) string {
	f := v.FieldByName("encoding")
	if f.IsValid() && f.Kind() == reflect.String && f.String() != "" {
		return f.String()
	}
	return "UTF-8"
}

func keyMapField(v reflect.Value) map[string][]uint64 {
	f := v.FieldByName("keymap")
	if !f.IsValid() || f.Kind() != reflect.Map || f.IsNil() {
		return nil
	}
	out := make(map[string][]uint64, f.Len())
	for _, k := range f.MapKeys() {
		vals := f.MapIndex(k)
		offs := make([]uint64, 0, vals.Len())
		for i := 0; i < vals.Len(); i++ {
			offs = append(offs, vals.Index(i).Uint())
		}
		out[k.String()] = offs
	}
	return out
}

func parseRedirect(raw string) string {
	if !strings.HasPrefix(raw, "@@@LINK=") {
		return ""
	}
	target := strings.TrimPrefix(raw, "@@@LINK=")
	return strings.TrimSpace(strings.TrimRight(target, "\r\n"))
}
