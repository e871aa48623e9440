package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"fiscaliza/internal/cli"
	"fiscaliza/internal/platform/config"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/platform/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "fiscaliza-ctl"
	}
	logger.Init(opts)

	root := config.New()
	rootCmd := cli.RootCmd(cli.Env{
		Config: root,
		OpenStore: func(ctx context.Context) (*store.Store, error) {
			return store.Open(ctx, store.FromEnv(root, "ctl"), store.WithLogger(*logger.Get()))
		},
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
