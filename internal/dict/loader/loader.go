package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sagerenn/lexi/internal/config"
	"github.com/sagerenn/lexi/internal/dict"
	"github.com/sagerenn/lexi/internal/dict/dsl"
	"github.com/sagerenn/lexi/internal/dict/filedict"
	"github.com/sagerenn/lexi/internal/dict/mdict"
	"github.com/sagerenn/lexi/internal/dict/stardict"
)

type Result struct {
	Store   *dict.Store
	Type    string
	Skipped int
}

// Load reads the word list named by cfg into a Store. A missing file is
// reported as *dict.NotFoundError; every other failure as *dict.LoadError.
func Load(cfg config.DictConfig) (Result, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return Result{}, &dict.LoadError{Path: path, Err: errors.New("dictionary path is empty")}
	}
	// Format readers do not all wrap fs errors, so existence is checked here.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, dict.NewNotFoundError(path, err)
		}
		return Result{}, &dict.LoadError{Path: path, Err: err}
	}
	typ := strings.ToLower(strings.TrimSpace(cfg.Type))
	if typ == "" {
		typ = detectType(path)
	}

	var (
		entries []dict.Entry
		err     error
	)
	switch typ {
	case "json", "yaml", "yml", "tsv", "tab", "txt":
		entries, err = filedict.Load(path, typ, cfg.Delimiter)
	case "dsl":
		entries, err = dsl.Load(path)
	case "stardict", "ifo":
		entries, err = stardict.Load(path)
	case "mdict", "mdx":
		entries, err = mdict.Load(path)
	default:
		err = fmt.Errorf("unsupported dictionary type: %q", typ)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, dict.NewNotFoundError(path, err)
		}
		return Result{}, &dict.LoadError{Path: path, Err: err}
	}

	b := dict.NewBuilder()
	b.AddAll(entries)
	return Result{Store: b.Build(), Type: typ, Skipped: b.Skipped()}, nil
}

func detectType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ifo":
		return "stardict"
	case ".mdx":
		return "mdict"
	case ".dsl":
		return "dsl"
	case ".yaml", ".yml":
		return "yaml"
	case ".tsv", ".txt":
		return "tsv"
	default:
		return "json"
	}
}
