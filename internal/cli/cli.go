// Package cli holds the fiscaliza-ctl commands
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fiscaliza/internal/core/version"
	"fiscaliza/internal/platform/config"
	"fiscaliza/internal/platform/store"
	ptime "fiscaliza/internal/platform/time"
)

// Env is what the commands need from the process
type Env struct {
	// Config is the unprefixed root; commands scope it themselves
	Config config.Conf
	// OpenStore opens the configured backends; the caller closes them
	OpenStore func(ctx context.Context) (*store.Store, error)
	Clock     ptime.Clock
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnText = color.New(color.FgYellow).SprintFunc()
	bold     = color.New(color.Bold).SprintFunc()
)

// RootCmd returns the fiscaliza-ctl command tree
func RootCmd(env Env) *cobra.Command {
	if env.Clock == nil {
		env.Clock = ptime.System()
	}
	cmd := &cobra.Command{
		Use:           "fiscaliza-ctl",
		Short:         "Administração do fiscaliza",
		Long:          `Comandos de manutenção: esquema dos bancos, numeração, validação de cadastros, consultas por período e tokens de acesso.`,
		Version:       version.Info("fiscaliza-ctl").Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(migrateCmd(env))
	cmd.AddCommand(nextNumberCmd(env))
	cmd.AddCommand(validateCmd(env))
	cmd.AddCommand(periodCmd(env))
	cmd.AddCommand(tokenCmd(env))

	return cmd
}

// withStore opens the store for the duration of fn
func withStore(ctx context.Context, env Env, fn func(st *store.Store) error) error {
	if env.OpenStore == nil {
		return fmt.Errorf("store not configured")
	}
	st, err := env.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return fn(st)
}

func printf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
