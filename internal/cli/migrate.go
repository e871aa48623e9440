package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fiscaliza/internal/platform/store"
	"fiscaliza/internal/platform/store/schema"
)

func migrateCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o esquema do Postgres e, se habilitado, do ClickHouse",
		Long: `Cria tabelas e índices que ainda não existem. Os comandos são idempotentes.

Examples:
  fiscaliza-ctl migrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), env, func(st *store.Store) error {
				out := cmd.OutOrStdout()
				pg := schema.ExecFunc(func(ctx context.Context, sql string, args ...any) error {
					_, err := st.PG.Exec(ctx, sql, args...)
					return err
				})
				if err := schema.Apply(cmd.Context(), pg, schema.Postgres()); err != nil {
					printf(out, "%s postgres\n", failMark)
					return err
				}
				printf(out, "%s postgres (%d comandos)\n", okMark, len(schema.Postgres()))

				if st.CH == nil {
					printf(out, "%s clickhouse desabilitado\n", warnText("-"))
					return nil
				}
				if err := schema.Apply(cmd.Context(), st.CH, schema.Clickhouse()); err != nil {
					printf(out, "%s clickhouse\n", failMark)
					return err
				}
				printf(out, "%s clickhouse (%d comandos)\n", okMark, len(schema.Clickhouse()))
				return nil
			})
		},
	}
}
