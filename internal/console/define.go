package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/sagerenn/lexi/internal/lookup"
)

// Define answers each word without prompting. Suggestions are listed
// rather than resolved. It reports whether every word was found.
func Define(out io.Writer, engine *lookup.Engine, words []string) bool {
	all := true
	for _, w := range words {
		res := engine.Lookup(w)
		var msg string
		switch res.Kind {
		case lookup.Suggested:
			msg = "Did you mean: " + strings.Join(res.Candidates, ", ") + "?"
		default:
			msg = res.Message()
		}
		if res.Kind != lookup.Found {
			all = false
		}
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%s\n%s\n", w, msg)
		fmt.Fprintln(out, rule)
	}
	return all
}
