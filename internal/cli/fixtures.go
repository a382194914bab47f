// Package cli implements the fixtures command: build the fixture records,
// validate and serialize them, and emit them to the configured sinks.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fiaro/fixtures/internal/auth"
	"github.com/fiaro/fixtures/internal/codec"
	"github.com/fiaro/fixtures/internal/config"
	"github.com/fiaro/fixtures/internal/emit"
	"github.com/fiaro/fixtures/internal/fixtures"
	"github.com/fiaro/fixtures/internal/logging"
	"github.com/fiaro/fixtures/internal/models"
	"github.com/fiaro/fixtures/internal/schema"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
)

// Options holds the command-line flags.
type Options struct {
	OutDir   string
	Print    bool
	Only     string
	Rules    map[string]string
	IssueKey bool
	List     bool
	Verbose  bool
}

// ruleFlags collects repeated -rule name=value flags.
type ruleFlags map[string]string

func (r ruleFlags) String() string {
	pairs := make([]string, 0, len(r))
	for k, v := range r {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (r ruleFlags) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	r[name] = val
	return nil
}

// ParseOptions parses args into Options. outDir is the default for -out.
func ParseOptions(fs *flag.FlagSet, args []string, outDir string) (Options, error) {
	opts := Options{Rules: make(map[string]string)}

	fs.StringVar(&opts.OutDir, "out", outDir, "directory fixture files are written to")
	fs.BoolVar(&opts.Print, "print", false, "print the named game fixture to stdout instead of writing files")
	fs.StringVar(&opts.Only, "only", "", "only emit fixtures whose file name matches this glob")
	fs.Var(ruleFlags(opts.Rules), "rule", "override a game rule, name=value (repeatable)")
	fs.BoolVar(&opts.IssueKey, "issue-key", false, "issue a signed player_key instead of the literal one")
	fs.BoolVar(&opts.List, "list", false, "list available fixtures")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if opts.Print && opts.Only != "" {
		return Options{}, errors.New("-only cannot be combined with -print")
	}
	if opts.Print && opts.IssueKey {
		return Options{}, errors.New("-issue-key cannot be combined with -print")
	}
	return opts, nil
}

// Run executes the fixtures command. Fixture text goes to out in print mode,
// logs always go to errOut.
func Run(ctx context.Context, opts Options, cfg config.Config, out, errOut io.Writer) error {
	level := cfg.LogLevel
	if opts.Verbose {
		level = logrus.DebugLevel.String()
	}
	logger, err := logging.New(level, errOut)
	if err != nil {
		return err
	}

	if opts.List {
		listFixtures(out)
		return nil
	}

	game := fixtures.BuildGameConfig()
	if opts.Print {
		game = fixtures.BuildNamedGameConfig()
	}
	game.Rules, err = fixtures.ApplyRuleOverrides(game.Rules, opts.Rules)
	if err != nil {
		return fmt.Errorf("rule override: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"overrides": len(opts.Rules),
		"cards":     game.CardDeck.Enabled(),
	}).Debug("Built game fixture")

	var (
		set      []fixtures.Fixture
		sinks    []emit.Sink
		failures []emit.SinkFailure
	)
	if opts.Print {
		set = []fixtures.Fixture{{Name: fixtures.GameFile, Schema: schema.CreateGame, Record: game}}
		sinks = []emit.Sink{&emit.WriterSink{Label: "stdout", W: out}}
	} else {
		lobby, err := buildLobby(logger, cfg, opts.IssueKey)
		if err != nil {
			return err
		}
		set, err = fixtures.Select(fixtures.Catalog(game, lobby), opts.Only)
		if err != nil {
			return err
		}

		var closeSinks func()
		sinks, failures, closeSinks = openSinks(ctx, logger, cfg, opts.OutDir)
		defer closeSinks()
	}

	if len(set) == 0 {
		logger.WithField("pattern", opts.Only).Warn("No fixtures selected")
		return nil
	}

	names := make([]string, 0, len(set))
	for _, f := range set {
		names = append(names, f.Name)
	}
	unavailableErrs := make([]error, 0, len(failures))
	for _, f := range failures {
		unavailableErrs = append(unavailableErrs, f.WriteErrors(names))
	}

	artifacts, buildErr := serialize(logger, set)
	emitErr := emit.NewEmitter(logger, sinks...).Emit(ctx, artifacts)
	return errors.Join(buildErr, emitErr, errors.Join(unavailableErrs...))
}

func buildLobby(logger *logrus.Logger, cfg config.Config, issueKey bool) (models.LobbyConfig, error) {
	lobby := fixtures.BuildLobbyConfig()
	if !issueKey {
		return lobby, nil
	}

	expire, err := auth.ParseExpireTime(cfg.TokenExpireTime)
	if err != nil {
		return models.LobbyConfig{}, err
	}
	var issuer *auth.KeyIssuer
	if cfg.KeyPrivatePath != "" && cfg.KeyPublicPath != "" {
		issuer, err = auth.NewKeyIssuerFromPath(cfg.KeyPrivatePath, cfg.KeyPublicPath, expire)
	} else {
		issuer, err = auth.NewKeyIssuer(expire)
	}
	if err != nil {
		return models.LobbyConfig{}, err
	}

	hostID := uuid.New()
	lobby.PlayerKey, err = issuer.IssuePlayerKey(hostID)
	if err != nil {
		return models.LobbyConfig{}, fmt.Errorf("failed to issue player key: %w", err)
	}
	logger.WithField("host_id", hostID).Debug("Issued player key")
	return lobby, nil
}

// serialize renders and validates every fixture. Fixtures that fail are
// left out of the result and reported in the returned error.
func serialize(logger *logrus.Logger, set []fixtures.Fixture) ([]emit.Artifact, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}

	var errs []error
	artifacts := make([]emit.Artifact, 0, len(set))
	for _, f := range set {
		text, err := codec.Serialize(f.Record)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		if err := validator.Validate(f.Schema, text); err != nil {
			logger.WithFields(logrus.Fields{
				"fixture": f.Name,
				"schema":  f.Schema,
				"error":   err,
			}).Error("Fixture failed validation")
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
			continue
		}
		artifacts = append(artifacts, emit.Artifact{Name: f.Name, Text: text})
	}
	return artifacts, errors.Join(errs...)
}

// openSinks returns the sinks enabled in cfg that could be opened, a failure
// for each one that could not, and a func that releases their connections.
func openSinks(ctx context.Context, logger *logrus.Logger, cfg config.Config, outDir string) ([]emit.Sink, []emit.SinkFailure, func()) {
	var (
		sinks    []emit.Sink
		failures []emit.SinkFailure
		closers  []func()
	)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	fileSink := emit.FileSink{Dir: outDir}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		failures = append(failures, emit.SinkFailure{Sink: fileSink.Name(), Err: fmt.Errorf("failed to create output directory: %w", err)})
	} else {
		sinks = append(sinks, fileSink)
	}

	if cfg.RedisAddr != "" {
		rdb, err := emit.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			failures = append(failures, emit.SinkFailure{Sink: emit.RedisSinkName, Err: err})
		} else {
			closers = append(closers, func() {
				if err := rdb.Close(); err != nil {
					logger.WithError(err).Warn("Failed to close redis client")
				}
			})
			sinks = append(sinks, emit.NewRedisSink(rdb, cfg.RedisPrefix))
			logger.WithField("addr", cfg.RedisAddr).Debug("Redis sink enabled")
		}
	}

	if cfg.DatabaseURL != "" {
		pool, err := emit.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			failures = append(failures, emit.SinkFailure{Sink: emit.PostgresSinkName, Err: err})
		} else {
			closers = append(closers, pool.Close)

			pg := emit.NewPostgresSink(pool)
			if err := pg.EnsureTable(ctx); err != nil {
				failures = append(failures, emit.SinkFailure{Sink: pg.Name(), Err: err})
			} else {
				sinks = append(sinks, pg)
				logger.Debug("Postgres sink enabled")
			}
		}
	}

	for _, f := range failures {
		logger.WithFields(logrus.Fields{
			"sink":  f.Sink,
			"error": f.Err,
		}).Error("Sink unavailable")
	}

	return sinks, failures, closeAll
}

func listFixtures(out io.Writer) {
	set := fixtures.Catalog(fixtures.BuildGameConfig(), fixtures.BuildLobbyConfig())
	color.Fprintln(out, "Available fixtures:")
	for _, f := range set {
		color.Fprintf(out, "  <green>%s</>  <grey>(%s)</>\n", f.Name, f.Schema)
	}
}
