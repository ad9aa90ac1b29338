// Package console runs the interactive prompt/read/print loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sagerenn/lexi/internal/lookup"
	"github.com/sagerenn/lexi/internal/observability"
)

const (
	PromptWord   = "Please enter the word or exit to end program: "
	ExitWord     = "exit"
	ruleWidth    = 80
	promptSuffix = " ? Please enter the correct word, or N if no: "
)

var rule = strings.Repeat("=", ruleWidth)

type Session struct {
	in     *bufio.Reader
	out    io.Writer
	engine *lookup.Engine
	log    *observability.Logger
	lines  chan readResult
}

type readResult struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer, engine *lookup.Engine, log *observability.Logger) *Session {
	if log == nil {
		log = observability.Nop()
	}
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		engine: engine,
		log:    log,
		lines:  make(chan readResult, 1),
	}
}

// Run loops until the user types exit or input ends, both of which return
// nil. Input may end at either prompt. A cancelled ctx interrupts a pending
// read.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, PromptWord)
		word, err := s.readLine(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(word, ExitWord) {
			return nil
		}
		err = s.answer(ctx, word)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) answer(ctx context.Context, word string) error {
	res := s.engine.Lookup(word)
	s.log.Debugw("lookup", "input", word, "kind", res.Kind.String())
	switch res.Kind {
	case lookup.InvalidInput:
		fmt.Fprintln(s.out, res.Message())
		return nil
	case lookup.Suggested:
		fmt.Fprint(s.out, SuggestionPrompt(res.Candidates))
		reply, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		msg, err := s.engine.Resolve(reply, res.Candidates)
		if err != nil {
			return err
		}
		s.print(msg)
		return nil
	default:
		s.print(res.Message())
		return nil
	}
}

func (s *Session) print(msg string) {
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, msg)
	fmt.Fprintln(s.out, rule)
}

// readLine reads one line without its terminator. The read runs on its own
// goroutine so that ctx can abandon it.
func (s *Session) readLine(ctx context.Context) (string, error) {
	go func() {
		text, err := s.in.ReadString('\n')
		if errors.Is(err, io.EOF) && text != "" {
			err = nil
		}
		s.lines <- readResult{text: strings.TrimRight(text, "\r\n"), err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-s.lines:
		return r.text, r.err
	}
}

func SuggestionPrompt(candidates []string) string {
	return "Did you mean [" + strings.Join(candidates, ", ") + "]" + promptSuffix
}
