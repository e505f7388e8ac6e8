package main

import (
	"context"
	"io"
	"time"

	"github.com/hyp3rd/ewrap"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/backend"
	"github.com/hyp3rd/hyperstats/pkg/middleware"
	"github.com/hyp3rd/hyperstats/pkg/report"
)

const instrumentationName = "github.com/hyp3rd/hyperstats"

type options struct {
	output    string
	format    string
	lang      string
	logLevel  string
	redisAddr string
}

func (o *options) installFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.format, "format", constants.DefaultFormat, "Report format (text, json, msgpack, cbor)")
	flags.StringVar(&o.lang, "lang", constants.DefaultLanguage, "Language of the text report (en, es)")
	flags.StringVarP(&o.logLevel, "log-level", "l", "warn", "Set the logging level (debug, info, warn, error)")
	flags.StringVar(&o.redisAddr, "redis-addr", "", "Memoize reports in the Redis server at this address")
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hyperstats [OPTIONS] FILE",
		Short: "Compute count, mean, median, mode, standard deviation and variance of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return runSummarize(cmd.Context(), opts, args[0], stdout, stderr)
		},
	}

	cmd.SetErr(stderr)

	opts.installFlags(cmd.PersistentFlags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", constants.DefaultOutputPath,
		`File the report is persisted to ("`+constants.DisabledOutputPath+`" disables persistence)`)

	cmd.AddCommand(newServeCommand(opts, stderr))

	return cmd
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, ewrap.Wrapf(err, "log level %q", level)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	return logger, nil
}

func newReporter(opts *options) (*report.Reporter, error) {
	labels, ok := report.LabelsFor(opts.lang)
	if !ok {
		return nil, ewrap.Wrapf(sentinel.ErrUnknownLanguage, "%s", opts.lang)
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	return report.New(report.WithLabels(labels), report.WithFormat(format))
}

// newService builds the service and wraps it with the logging and stats middlewares.
func newService(ctx context.Context, opts *options, store backend.IBackend, logger *logrus.Logger) (hyperstats.Service, error) {
	var hsOpts []hyperstats.Option

	if opts.redisAddr != "" {
		rb, err := backend.NewRedis(backend.WithRedisClient(backend.NewRedisClient(opts.redisAddr)))
		if err != nil {
			return nil, err
		}

		store = rb
	}

	if store != nil {
		hsOpts = append(hsOpts, hyperstats.WithBackend(store))
	}

	hs, err := hyperstats.New(ctx, hsOpts...)
	if err != nil {
		return nil, err
	}

	// Providers are no-ops until an SDK is installed globally.
	svc, err := middleware.NewOTelMetricsMiddleware(hs, otel.GetMeterProvider().Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return hyperstats.ApplyMiddleware(svc,
		func(next hyperstats.Service) hyperstats.Service {
			return middleware.NewOTelTracingMiddleware(next, otel.GetTracerProvider().Tracer(instrumentationName))
		},
		func(next hyperstats.Service) hyperstats.Service {
			return middleware.NewStatsCollectorMiddleware(next, hs.StatsCollector)
		},
		func(next hyperstats.Service) hyperstats.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
	), nil
}

// runSummarize loads path, prints its report and persists it.
// A dataset that cannot be loaded is reported on stdout and is not an error.
func runSummarize(ctx context.Context, opts *options, path string, stdout, stderr io.Writer) error {
	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		return err
	}

	reporter, err := newReporter(opts)
	if err != nil {
		return err
	}

	svc, err := newService(ctx, opts, nil, logger)
	if err != nil {
		return err
	}

	defer func() {
		stopErr := svc.Stop(ctx)
		if stopErr != nil {
			logger.WithError(stopErr).Warn("stop service")
		}
	}()

	start := time.Now()

	res := svc.Load(ctx, path)
	if !res.OK() {
		logger.WithError(res.Err).WithField("reason", res.Reason().String()).Debug("load failed")

		return reporter.Diagnostic(stdout, res.Reason(), path)
	}

	rep, err := svc.Compute(ctx, res.Set)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	var sink report.Sink
	if opts.output != constants.DisabledOutputPath {
		sink = report.FileSink(opts.output)
	}

	err = reporter.Deliver(stdout, sink, rep, elapsed)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"observations": res.Set.Len(),
		"elapsed":      elapsed,
		"persisted":    sink != nil,
	}).Info("report delivered")

	return nil
}
