package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sagerenn/lexi/internal/buildinfo"
	"github.com/sagerenn/lexi/internal/dict"
	"github.com/sagerenn/lexi/internal/lookup"
)

func writeDict(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSession(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	code, out, _ := execute(t, "hello\nhelo\nn\nexit\n", "--dict", path)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	for _, want := range []string{"a greeting", "Did you mean [hello]", lookup.MsgDeclined} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, MsgTerminating+"\n") {
		t.Fatalf("terminating message must come last:\n%s", out)
	}
}

func TestRunSessionSummary(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	code, _, errOut := execute(t, "helo\nn\nexit\n", "--dict", path, "--log-level", "debug")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(errOut, "session summary") || !strings.Contains(errOut, "cached_words") {
		t.Fatalf("summary not logged:\n%s", errOut)
	}
}

func TestRunMissingDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private", "dictionary.json")
	code, out, _ := execute(t, "", "--dict", path)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "ERROR: No such file or directory: dictionary.json could not be found.\n" + MsgTerminating + "\n"
	if out != want {
		t.Fatalf("output:\n%q\nwant:\n%q", out, want)
	}
}

func TestRunLoadFailure(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": `)
	code, out, _ := execute(t, "", "--dict", path)
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(out, MsgProblem+"\n") || !strings.HasSuffix(out, MsgTerminating+"\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunStrictUnknownReply(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	code, out, _ := execute(t, "helo\nHello\n", "--dict", path, "--reply-policy", "strict")
	if code != 1 {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, MsgProblem) {
		t.Fatalf("missing problem message:\n%s", out)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	cases := [][]string{
		{"--dict", path, "--cutoff", "2"},
		{"--dict", path, "--limit", "0"},
		{"--dict", path, "--algorithm", "soundex"},
		{"--dict", path, "--reply-policy", "loose"},
		{"--dict", path, "--log-level", "verbose"},
		{"--config", filepath.Join(t.TempDir(), "missing.json")},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		code, out, _ := execute(t, "exit\n", args...)
		if code != 1 {
			t.Errorf("%v: exit code = %d, output:\n%s", args, code, out)
		}
	}
}

func TestRunConfigFile(t *testing.T) {
	dictPath := writeDict(t, "words.tsv", "colour\tthe property of reflecting light\n")
	cfgPath := writeDict(t, "lexi.json", `{"dictionary": {"path": "`+filepath.ToSlash(dictPath)+`"}, "match": {"limit": 1}}`)
	code, out, _ := execute(t, "", "--config", cfgPath, "define", "colour")
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, "the property of reflecting light") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDefineCommand(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	code, out, _ := execute(t, "", "define", "--dict", path, "hello", "helo")
	if code != 2 {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	if !strings.Contains(out, "a greeting") || !strings.Contains(out, "Did you mean: hello?") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDefineCommandExitStatus(t *testing.T) {
	path := writeDict(t, "dictionary.json", `{"hello": "a greeting"}`)
	cases := []struct {
		words []string
		want  int
	}{
		{[]string{"hello"}, 0},
		{[]string{"HELLO", "hello"}, 0},
		{[]string{"zzzz"}, 2},
		{[]string{"hello", "12"}, 2},
	}
	for _, c := range cases {
		args := append([]string{"define", "--dict", path}, c.words...)
		code, out, _ := execute(t, "", args...)
		if code != c.want {
			t.Errorf("define %v: exit code = %d, want %d", c.words, code, c.want)
		}
		if strings.Contains(out, MsgProblem) {
			t.Errorf("define %v printed the problem message:\n%s", c.words, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	code, out, _ := execute(t, "", "version")
	if code != 0 || !strings.HasPrefix(out, buildinfo.String()) {
		t.Fatalf("code = %d, output:\n%s", code, out)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard(func() error { panic("boom") })
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("guard() = %v", err)
	}
	var out bytes.Buffer
	if code := report(&out, err); code != 1 {
		t.Fatalf("report() = %d", code)
	}
}

func TestReportNotFound(t *testing.T) {
	var out bytes.Buffer
	err := errors.Join(dict.NewNotFoundError("/a/b/words.json", os.ErrNotExist))
	if code := report(&out, err); code != 0 {
		t.Fatalf("report() = %d", code)
	}
	if !strings.Contains(out.String(), "words.json could not be found") || strings.Contains(out.String(), "/a/b") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
