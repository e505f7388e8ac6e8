package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/pkg/backend"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr              string
	readTimeout       time.Duration
	writeTimeout      time.Duration
	storeCapacity     int
	evictionAlgorithm string
}

func newServeCommand(opts *options, stderr io.Writer) *cobra.Command {
	serveOpts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve [OPTIONS]",
		Short: "Serve the management HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, opts, serveOpts, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&serveOpts.addr, "addr", constants.DefaultMgmtAddr, "Listen address of the management HTTP API")
	flags.DurationVar(&serveOpts.readTimeout, "read-timeout", constants.DefaultMgmtReadTimeout, "Maximum duration for reading a request")
	flags.DurationVar(&serveOpts.writeTimeout, "write-timeout", constants.DefaultMgmtWriteTimeout, "Maximum duration for writing a response")
	flags.IntVar(&serveOpts.storeCapacity, "store-capacity", 0, "Maximum number of memoized reports held in memory (0 is unbounded)")
	flags.StringVar(&serveOpts.evictionAlgorithm, "eviction-algorithm", constants.DefaultEvictionAlgorithm,
		"Report dropped when the in-memory store is full (fifo, lru, lfu)")

	return cmd
}

func runServe(ctx context.Context, opts *options, serveOpts *serveOptions, stderr io.Writer) error {
	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		return err
	}

	var store backend.IBackend

	if opts.redisAddr == "" {
		store, err = backend.NewInMemory(
			backend.WithCapacity[backend.InMemory](serveOpts.storeCapacity),
			backend.WithEvictionAlgorithm(serveOpts.evictionAlgorithm),
		)
		if err != nil {
			return err
		}
	}

	svc, err := newService(ctx, opts, store, logger)
	if err != nil {
		return err
	}

	srv := hyperstats.NewManagementHTTPServer(serveOpts.addr,
		hyperstats.WithMgmtReadTimeout(serveOpts.readTimeout),
		hyperstats.WithMgmtWriteTimeout(serveOpts.writeTimeout),
	)

	err = srv.Start(ctx, svc)
	if err != nil {
		return err
	}

	logger.WithField("addr", srv.Address()).Info("management API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		logger.WithError(err).Warn("management API shutdown")
	}

	return svc.Stop(shutdownCtx)
}
