// Package cli implements the easybill command line front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andyle182810/easybill/authtoken"
	"github.com/andyle182810/easybill/easybill"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/andyle182810/easybill/internal/config"
	"github.com/andyle182810/easybill/logutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	ErrEmptyInput  = errors.New("cli: batch input is empty")
	ErrBatchFailed = errors.New("cli: batch had failures")
)

// Options wires the commands to their surroundings. Zero values fall back to
// the process environment and standard streams.
type Options struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ map[string]string

	// Sleeper replaces the real clock for rate limit and batch pauses.
	Sleeper     httpclient.Sleeper
	HTTPOptions []httpclient.Option
}

type app struct {
	opts   Options
	cfg    *config.Config
	logger zerolog.Logger
	client *easybill.Client
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	a := &app{opts: opts, cfg: nil, logger: zerolog.Nop(), client: nil}

	root := &cobra.Command{
		Use:   "easybill",
		Short: "Call the easybill REST API from the command line",
		Long: `easybill runs operations of the easybill REST API. Parameters are passed
as JSON, responses are printed as JSON. Rate limited requests are retried
after a fixed pause. Configuration is read from the environment and .env.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	root.AddCommand(a.operationsCommand())
	root.AddCommand(a.verifyCommand())
	root.AddCommand(a.batchCommand())

	for _, resource := range easybill.Resources() {
		root.AddCommand(a.resourceCommand(resource))
	}

	return root
}

func (a *app) initialize(_ *cobra.Command, _ []string) error {
	var err error

	if a.opts.Environ != nil {
		a.cfg, err = config.FromMap(a.opts.Environ)
	} else {
		a.cfg, err = config.New()
	}

	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a.logger = logutil.NewLogger(a.opts.Stderr, a.cfg.LogLevel, a.cfg.LogFormat)
	zerolog.SetGlobalLevel(logutil.ParseZerologLevel(a.cfg.LogLevel))
	log.Logger = a.logger

	a.client = easybill.NewWithBaseURL(a.cfg.BaseURL, a.cfg.APIKey, a.httpOptions()...)

	return nil
}

func (a *app) httpOptions() []httpclient.Option {
	opts := []httpclient.Option{
		httpclient.WithTimeout(a.cfg.Timeout),
		httpclient.WithMaxRetries(a.cfg.MaxRetries),
		httpclient.WithRetryDelay(a.cfg.RetryDelay),
		httpclient.WithLanguage(a.cfg.Language()),
		httpclient.WithLogger(a.logger),
	}

	if a.cfg.RateLimit > 0 {
		opts = append(opts, httpclient.WithRateLimiter(rate.NewLimiter(rate.Limit(a.cfg.RateLimit), max(a.cfg.RateBurst, 1))))
	}

	if a.opts.Sleeper != nil {
		opts = append(opts, httpclient.WithSleeper(a.opts.Sleeper))
	}

	return append(opts, a.opts.HTTPOptions...)
}

// requireAPIKey fails before any request goes out without credentials.
func (a *app) requireAPIKey(ctx context.Context) error {
	key := authtoken.New(a.cfg.APIKey)
	if _, err := key.GetToken(ctx); err != nil {
		return fmt.Errorf("EASYBILL_API_KEY: %w", err)
	}

	a.logger.Debug().Str("api_key", key.Masked()).Str("base_url", a.cfg.BaseURL).Msg("Using easybill credentials")

	return nil
}
