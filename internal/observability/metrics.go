package observability

import "expvar"

var (
	LookupsFound     = expvar.NewInt("lookups_found")
	LookupsSuggested = expvar.NewInt("lookups_suggested")
	LookupsNotFound  = expvar.NewInt("lookups_not_found")
	LookupsInvalid   = expvar.NewInt("lookups_invalid")
	MatchCacheHits   = expvar.NewInt("match_cache_hits")
)

// RecordLookup counts one lookup outcome by its kind name.
func RecordLookup(kind string) {
	switch kind {
	case "found":
		LookupsFound.Add(1)
	case "suggested":
		LookupsSuggested.Add(1)
	case "not_found":
		LookupsNotFound.Add(1)
	case "invalid_input":
		LookupsInvalid.Add(1)
	}
}

// Summary returns the counters as logger key/value pairs.
func Summary() []any {
	return []any{
		"found", LookupsFound.Value(),
		"suggested", LookupsSuggested.Value(),
		"not_found", LookupsNotFound.Value(),
		"invalid", LookupsInvalid.Value(),
		"cache_hits", MatchCacheHits.Value(),
	}
}
