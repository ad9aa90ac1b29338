package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sagerenn/lexi/internal/cache"
	"github.com/sagerenn/lexi/internal/config"
	"github.com/sagerenn/lexi/internal/console"
	"github.com/sagerenn/lexi/internal/dict/loader"
	"github.com/sagerenn/lexi/internal/lookup"
	"github.com/sagerenn/lexi/internal/match"
	"github.com/sagerenn/lexi/internal/observability"
)

type options struct {
	configPath  string
	dictPath    string
	dictType    string
	delimiter   string
	cutoff      float64
	limit       int
	algorithm   string
	replyPolicy string
	logLevel    string
}

func (o *options) bind(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "path to JSON config (optional)")
	f.StringVarP(&o.dictPath, "dict", "d", def.Dictionary.Path, "path to the word list")
	f.StringVar(&o.dictType, "type", "", "word list format: json, yaml, tsv, dsl, stardict, mdict (default: by extension)")
	f.StringVar(&o.delimiter, "delimiter", "", "field delimiter for tsv word lists (default: tab)")
	f.Float64Var(&o.cutoff, "cutoff", def.Match.Cutoff, "minimum similarity for suggestions, within [0, 1]")
	f.IntVarP(&o.limit, "limit", "n", def.Match.Limit, "maximum number of suggestions")
	f.StringVar(&o.algorithm, "algorithm", def.Match.Algorithm, "similarity metric: "+strings.Join(match.Names(), ", "))
	f.StringVar(&o.replyPolicy, "reply-policy", def.Match.ReplyPolicy, "how suggestion replies are matched: fold or strict")
	f.StringVar(&o.logLevel, "log-level", def.Log.Level, "log level: debug, info, warn, error")
}

// resolve layers flags the user set over the config file over defaults.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	f := cmd.Flags()
	if f.Changed("dict") {
		cfg.Dictionary.Path = o.dictPath
	}
	if f.Changed("type") {
		cfg.Dictionary.Type = o.dictType
	}
	if f.Changed("delimiter") {
		cfg.Dictionary.Delimiter = o.delimiter
	}
	if f.Changed("cutoff") {
		cfg.Match.Cutoff = o.cutoff
	}
	if f.Changed("limit") {
		cfg.Match.Limit = o.limit
	}
	if f.Changed("algorithm") {
		cfg.Match.Algorithm = o.algorithm
	}
	if f.Changed("reply-policy") {
		cfg.Match.ReplyPolicy = o.replyPolicy
	}
	if f.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, o options) (*lookup.Engine, *observability.Logger, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := observability.NewWithWriter(cfg.Log.Level, cmd.ErrOrStderr())

	metric, err := match.New(cfg.Match.Algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	res, err := loader.Load(cfg.Dictionary)
	if err != nil {
		log.Errorw("dictionary load error", "error", err)
		return nil, nil, err
	}
	log.Infow("dictionary loaded",
		"path", cfg.Dictionary.Path,
		"type", res.Type,
		"words", res.Store.Len(),
		"skipped", res.Skipped,
	)

	engine := lookup.New(res.Store, lookup.Options{
		Metric:      metric,
		Limit:       cfg.Match.Limit,
		Cutoff:      cfg.Match.Cutoff,
		ReplyPolicy: cfg.Match.ReplyPolicy,
		Cache:       cache.New[[]string](cfg.Cache.Size, cfg.Cache.TTL),
		Log:         log,
	})
	return engine, log, nil
}

func runSession(cmd *cobra.Command, o options) error {
	engine, log, err := setup(cmd, o)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), engine, log)
	err = s.Run(cmd.Context())
	log.Debugw("session summary", append(observability.Summary(), "cached_words", engine.CachedWords())...)
	return err
}
