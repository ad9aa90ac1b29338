// Package lookup answers a typed word from a Store: the exact definition,
// close-match suggestions awaiting the user's pick, or a not-found verdict.
package lookup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sagerenn/lexi/internal/cache"
	"github.com/sagerenn/lexi/internal/config"
	"github.com/sagerenn/lexi/internal/dict"
	"github.com/sagerenn/lexi/internal/match"
	"github.com/sagerenn/lexi/internal/observability"
)

const (
	MsgInvalidInput = "ERROR: Only characters from the alphabet are allowed."
	MsgNotFound     = "The word doesn't exist. Please double check it."
	MsgDeclined     = "The word doesn't exist in this dictionary."
	MsgUnrecognized = "We didn't understand your entry."
)

// ErrUnknownReply is returned by Resolve under the strict reply policy when
// the reply is not a key of the store.
var ErrUnknownReply = errors.New("reply is not in the dictionary")

type Kind int

const (
	InvalidInput Kind = iota
	Found
	Suggested
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case Suggested:
		return "suggested"
	case NotFound:
		return "not_found"
	default:
		return "invalid_input"
	}
}

type Result struct {
	Kind       Kind
	Word       string
	Definition string
	Candidates []string
}

// Message is the text shown for a settled result. Suggested results have
// no message until Resolve settles them.
func (r Result) Message() string {
	switch r.Kind {
	case Found:
		return r.Definition
	case NotFound:
		return MsgNotFound
	case InvalidInput:
		return MsgInvalidInput
	default:
		return ""
	}
}

type ReplyClass int

const (
	ReplyEmpty ReplyClass = iota
	ReplyNumeric
	ReplyNo
	ReplyWord
)

func (c ReplyClass) String() string {
	switch c {
	case ReplyNumeric:
		return "numeric"
	case ReplyNo:
		return "no"
	case ReplyWord:
		return "word"
	default:
		return "empty"
	}
}

// ClassifyReply sorts a trimmed disambiguation reply into its class.
func ClassifyReply(reply string) ReplyClass {
	switch {
	case reply == "":
		return ReplyEmpty
	case isNumeric(reply):
		return ReplyNumeric
	case reply == "N" || reply == "n":
		return ReplyNo
	default:
		return ReplyWord
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return s != ""
}

type Options struct {
	Metric      match.Metric
	Limit       int
	Cutoff      float64
	ReplyPolicy string
	Cache       *cache.Cache[[]string]
	Log         *observability.Logger
}

type Engine struct {
	store  *dict.Store
	words  []string
	metric match.Metric
	limit  int
	cutoff float64
	strict bool
	memo   *cache.Cache[[]string]
	log    *observability.Logger
}

func New(store *dict.Store, opts Options) *Engine {
	if opts.Metric == nil {
		opts.Metric = match.Ratio{}
	}
	if opts.Limit <= 0 {
		opts.Limit = match.DefaultLimit
	}
	if opts.Cache == nil {
		opts.Cache = cache.New[[]string](256, 0)
	}
	if opts.Log == nil {
		opts.Log = observability.Nop()
	}
	return &Engine{
		store:  store,
		words:  store.Words(),
		metric: opts.Metric,
		limit:  opts.Limit,
		cutoff: opts.Cutoff,
		strict: opts.ReplyPolicy == config.ReplyStrict,
		memo:   opts.Cache,
		log:    opts.Log,
	}
}

func (e *Engine) Lookup(raw string) Result {
	res := e.lookup(raw)
	observability.RecordLookup(res.Kind.String())
	return res
}

func (e *Engine) lookup(raw string) Result {
	if !dict.IsWord(raw) {
		return Result{Kind: InvalidInput}
	}
	word := strings.ToLower(raw)
	if def, ok := e.store.Lookup(word); ok {
		return Result{Kind: Found, Word: word, Definition: def}
	}
	candidates := e.closeMatches(word)
	if len(candidates) == 0 {
		return Result{Kind: NotFound, Word: word}
	}
	e.log.Debugw("suggesting close matches", "word", word, "candidates", candidates)
	return Result{Kind: Suggested, Word: word, Candidates: candidates}
}

func (e *Engine) closeMatches(word string) []string {
	if c, ok := e.memo.Get(word); ok {
		observability.MatchCacheHits.Add(1)
		return c
	}
	c := match.Close(word, e.words, e.limit, e.cutoff, e.metric)
	e.memo.Set(word, c)
	return c
}

// CachedWords is the number of misspellings whose suggestions are memoised.
func (e *Engine) CachedWords() int {
	return e.memo.Len()
}

// Resolve settles a suggestion with the user's reply. The reply is looked
// up in the whole store; candidates only shape the prompt.
func (e *Engine) Resolve(reply string, candidates []string) (string, error) {
	reply = strings.TrimSpace(reply)
	class := ClassifyReply(reply)
	e.log.Debugw("disambiguation reply", "class", class.String(), "candidates", candidates)
	switch class {
	case ReplyNumeric:
		return MsgInvalidInput, nil
	case ReplyNo:
		return MsgDeclined, nil
	case ReplyWord:
		return e.resolveWord(reply)
	default:
		return MsgUnrecognized, nil
	}
}

func (e *Engine) resolveWord(reply string) (string, error) {
	if e.strict {
		def, ok := e.store.Lookup(reply)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownReply, reply)
		}
		return def, nil
	}
	if !dict.IsWord(reply) {
		return MsgInvalidInput, nil
	}
	if def, ok := e.store.Lookup(strings.ToLower(reply)); ok {
		return def, nil
	}
	return MsgNotFound, nil
}
