package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fiscaliza/internal/platform/auth"
)

func tokenCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "token <matricula>",
		Short: "Emite um token de acesso para um agente",
		Long: `Assina um token com FISCALIZA_API_JWT_SECRET, válido por FISCALIZA_API_JWT_TTL (padrão 12h).

Examples:
  fiscaliza-ctl token A123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := env.Config.Prefix("FISCALIZA_API_")
			secret := cfg.MayString("JWT_SECRET", "")
			if secret == "" {
				return fmt.Errorf("FISCALIZA_API_JWT_SECRET não definido")
			}
			tokens, err := auth.New(auth.Options{
				Secret: secret,
				Issuer: cfg.MayString("JWT_ISSUER", "fiscaliza"),
				TTL:    cfg.MayDuration("JWT_TTL", auth.DefaultTTL),
				Clock:  env.Clock,
			})
			if err != nil {
				return err
			}
			tok, err := tokens.Sign(args[0])
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", tok)
			return nil
		},
	}
}
