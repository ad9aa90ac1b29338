package match

import (
	"math"
	"reflect"
	"testing"
)

func TestRatioScores(t *testing.T) {
	cases := []struct {
		word, candidate string
		want            float64
	}{
		{"helo", "hello", 8.0 / 9.0},
		{"helo", "help", 0.75},
		{"abc", "abc", 1},
		{"abc", "xyz", 0},
	}
	for _, c := range cases {
		score := Ratio{}.Prepare(c.word)
		got, _ := score(c.candidate, 0)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ratio(%q, %q) = %v, want %v", c.word, c.candidate, got, c.want)
		}
	}
}

func TestCloseOrdersBestFirst(t *testing.T) {
	got := Close("appel", []string{"ape", "apple", "peach", "puppy"}, DefaultLimit, DefaultCutoff, Ratio{})
	want := []string{"apple", "ape"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Close() = %v, want %v", got, want)
	}
}

func TestCloseBreaksTiesByCandidateOrder(t *testing.T) {
	got := Close("bat", []string{"mat", "cat", "rat", "hat"}, DefaultLimit, DefaultCutoff, Ratio{})
	want := []string{"mat", "cat", "rat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Close() = %v, want %v", got, want)
	}
}

func TestCloseCapsAndCutoff(t *testing.T) {
	keys := []string{"hello", "help", "world"}
	if got := Close("helo", keys, 1, DefaultCutoff, Ratio{}); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Fatalf("limit 1: got %v", got)
	}
	if got := Close("helo", keys, 3, 0.8, Ratio{}); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Fatalf("cutoff 0.8: got %v", got)
	}
	if got := Close("zzzz", keys, 3, DefaultCutoff, Ratio{}); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
	if got := Close("helo", keys, 0, DefaultCutoff, Ratio{}); got != nil {
		t.Fatalf("limit 0: got %v", got)
	}
	if got := Close("helo", keys, 3, 1.5, Ratio{}); got != nil {
		t.Fatalf("cutoff out of range: got %v", got)
	}
}

func TestEditDistanceMetric(t *testing.T) {
	m, err := New("levenshtein")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "levenshtein" {
		t.Fatalf("Name() = %q", m.Name())
	}
	got := Close("helo", []string{"world", "help", "hello"}, 3, DefaultCutoff, m)
	want := []string{"hello", "help"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Close() = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		m, err := New(name)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
			continue
		}
		if m.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, m.Name())
		}
	}
	if m, err := New(""); err != nil || m.Name() != "ratio" {
		t.Fatalf("New(\"\") = %v, %v", m, err)
	}
	if _, err := New("soundex"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
