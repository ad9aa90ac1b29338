// Package match selects close matches for a misspelled word.
//
// The default metric is the Ratcliff/Obershelp ratio 2*M/T, where M is the
// number of matching characters and T the total length of both strings.
// Selection keeps every candidate scoring at least the cutoff, best first,
// with equal scores in candidate order.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
)

const (
	DefaultLimit  = 3
	DefaultCutoff = 0.6
)

// A Scorer rates one candidate against a prepared word. ok is false when
// the score is below cutoff; the score may then be an upper bound only.
type Scorer func(candidate string, cutoff float64) (score float64, ok bool)

type Metric interface {
	Name() string
	Prepare(word string) Scorer
}

var edlibAlgorithms = map[string]edlib.Algorithm{
	"levenshtein":         edlib.Levenshtein,
	"damerau-levenshtein": edlib.DamerauLevenshtein,
	"osa":                 edlib.OSADamerauLevenshtein,
	"lcs":                 edlib.Lcs,
	"jaro":                edlib.Jaro,
	"jaro-winkler":        edlib.JaroWinkler,
}

// New returns the metric registered under name.
func New(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "ratio" {
		return Ratio{}, nil
	}
	if algo, ok := edlibAlgorithms[name]; ok {
		return editMetric{name: name, algo: algo}, nil
	}
	return nil, fmt.Errorf("unknown match algorithm %q (known: %s)", name, strings.Join(Names(), ", "))
}

func Names() []string {
	names := make([]string, 0, len(edlibAlgorithms)+1)
	names = append(names, "ratio")
	for n := range edlibAlgorithms {
		names = append(names, n)
	}
	sort.Strings(names[1:])
	return names
}

type candidate struct {
	key   string
	score float64
}

// Close returns at most limit candidates whose similarity to word is at
// least cutoff, ordered by descending similarity.
func Close(word string, candidates []string, limit int, cutoff float64, m Metric) []string {
	if limit <= 0 || cutoff < 0 || cutoff > 1 || len(candidates) == 0 {
		return nil
	}
	score := m.Prepare(word)
	hits := make([]candidate, 0, limit)
	for _, c := range candidates {
		if s, ok := score(c, cutoff); ok {
			hits = append(hits, candidate{key: c, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.key)
	}
	return out
}

// Ratio is the sequence-matcher ratio. The cheap upper bounds are checked
// before the full computation.
type Ratio struct{}

func (Ratio) Name() string {
	return "ratio"
}

func (Ratio) Prepare(word string) Scorer {
	m := difflib.NewMatcher(nil, chars(word))
	return func(c string, cutoff float64) (float64, bool) {
		m.SetSeq1(chars(c))
		if r := m.RealQuickRatio(); r < cutoff {
			return r, false
		}
		if r := m.QuickRatio(); r < cutoff {
			return r, false
		}
		r := m.Ratio()
		return r, r >= cutoff
	}
}

type editMetric struct {
	name string
	algo edlib.Algorithm
}

func (e editMetric) Name() string {
	return e.name
}

func (e editMetric) Prepare(word string) Scorer {
	return func(c string, cutoff float64) (float64, bool) {
		s, err := edlib.StringsSimilarity(word, c, e.algo)
		if err != nil {
			return 0, false
		}
		return float64(s), float64(s) >= cutoff
	}
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
