package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fiscaliza/internal/core/daterange"
	"fiscaliza/internal/core/numbering"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/store"
	ptime "fiscaliza/internal/platform/time"
	irrdomain "fiscaliza/internal/services/api/irregularidades/domain"
	irrrepo "fiscaliza/internal/services/api/irregularidades/repo"
)

func nextNumberCmd(env Env) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "proximo-numero",
		Short: "Sugere o próximo número de irregularidade",
		Long: `Calcula o próximo número a partir dos números já cadastrados.
A sugestão não reserva o número: o cadastro falha se outro usuário usá-lo antes.

Examples:
  fiscaliza-ctl proximo-numero
  fiscaliza-ctl proximo-numero --ano 2025`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 {
				year = ptime.Year(env.Clock, location(env, cmd.ErrOrStderr()))
			}
			return withStore(cmd.Context(), env, func(st *store.Store) error {
				nums, err := irrrepo.Binder{}.Bind(st.PG).Numbers(cmd.Context())
				if err != nil {
					return err
				}
				next, err := numbering.Next(year, nums)
				if err != nil {
					return perr.FromDomain(err)
				}
				printf(cmd.OutOrStdout(), "%s\n", bold(next))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "ano", 0, "ano do número (padrão: ano corrente)")
	return cmd
}

// location reads FISCALIZA_API_TIMEZONE, the zone the API takes the year
// from. An unknown zone is reported on warn and the local zone is used
func location(env Env, warn io.Writer) *time.Location {
	name := env.Config.Prefix("FISCALIZA_API_").MayString("TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(name)
	if err != nil {
		printf(warn, "%s fuso horário %q inválido, usando o horário local: %v\n", warnText("!"), name, err)
		return nil
	}
	return loc
}

func periodCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "periodo <inicio> <fim>",
		Short: "Lista as irregularidades de um período (dd/mm/aaaa)",
		Long: `Lista as irregularidades cuja data está entre inicio e fim, inclusive.
Uma data malformada, nos limites ou em um registro, interrompe a consulta.

Examples:
  fiscaliza-ctl periodo 01/03/2024 31/03/2024`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), env, func(st *store.Store) error {
				all, err := irrrepo.Binder{}.Bind(st.PG).List(cmd.Context())
				if err != nil {
					return err
				}
				items, err := daterange.FilterByRange(all, func(n irrdomain.Notice) string { return n.DataIrregularidade }, args[0], args[1])
				if err != nil {
					return perr.FromDomain(err)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "NÚMERO\tDATA\tHORÁRIO\tINFRAÇÃO\tLINHA\tVEÍCULO\tAGENTE")
				for _, n := range items {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", n.NumeroIrregularidade, n.DataIrregularidade,
						n.Horario, n.CodigoInfracao, n.NumeroLinha, n.NumeroVeiculo, n.MatriculaAgente)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "\n%s irregularidade(s)\n", bold(len(items)))
				return nil
			})
		},
	}
}
