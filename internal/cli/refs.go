package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/platform/store"
	cadsvc "fiscaliza/internal/services/api/cadastros/service"
)

func validateCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "validar <entidade> <chave>",
		Short: "Confere uma chave em um cadastro",
		Long: `Procura a chave no cadastro da entidade e mostra o rótulo encontrado.
Entidades: ` + entityNames() + `

Examples:
  fiscaliza-ctl validar agente A123
  fiscaliza-ctl validar linhas 100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, ok := crossref.ParseEntity(args[0])
			if !ok {
				return fmt.Errorf("entidade desconhecida %q (use %s)", args[0], entityNames())
			}
			return withStore(cmd.Context(), env, func(st *store.Store) error {
				svc := cadsvc.New(cadsvc.BindRepos(st.PG), cadsvc.DefaultTTL)
				res, err := svc.Validate(cmd.Context(), entity, args[1])
				if err != nil {
					return err
				}
				mark := okMark
				if !res.Matched {
					mark = failMark
				}
				printf(cmd.OutOrStdout(), "%s %s %s: %s\n", mark, entity, bold(args[1]), res.Label)
				return nil
			})
		},
	}
}

func entityNames() string {
	names := make([]string, 0, len(crossref.Entities()))
	for _, e := range crossref.Entities() {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}
