package repo

import (
	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/modkit/repokit"
	"fiscaliza/internal/services/api/cadastros/domain"
)

// Agents maps domain.Agent onto agentes
var Agents = Table[domain.Agent]{
	Entity:   crossref.Agent,
	Name:     "agentes",
	Key:      "matricula",
	KeyField: "matriculaAgenteFiscalizador",
	Columns:  []string{"matricula", "nome"},
	Scan: func(r repokit.Row) (a domain.Agent, err error) {
		err = r.Scan(&a.ID, &a.Matricula, &a.Nome)
		return
	},
	Values: func(a domain.Agent) []any { return []any{a.Matricula, a.Nome} },
	WithID: func(a domain.Agent, id string) domain.Agent { a.ID = id; return a },
}

// Vehicles maps domain.Vehicle onto veiculos
var Vehicles = Table[domain.Vehicle]{
	Entity:   crossref.Vehicle,
	Name:     "veiculos",
	Key:      "numero",
	KeyField: "numeroVeiculo",
	Columns:  []string{"numero", "placa", "subconcessionaria", "numero_consorcio"},
	Scan: func(r repokit.Row) (v domain.Vehicle, err error) {
		err = r.Scan(&v.ID, &v.Numero, &v.Placa, &v.Subconcessionaria, &v.NumeroConsorcio)
		return
	},
	Values: func(v domain.Vehicle) []any {
		return []any{v.Numero, v.Placa, v.Subconcessionaria, v.NumeroConsorcio}
	},
	WithID: func(v domain.Vehicle, id string) domain.Vehicle { v.ID = id; return v },
}

// Lines maps domain.Line onto linhas
var Lines = Table[domain.Line]{
	Entity:   crossref.Line,
	Name:     "linhas",
	Key:      "numero",
	KeyField: "numeroLinha",
	Columns:  []string{"numero", "nome"},
	Scan: func(r repokit.Row) (l domain.Line, err error) {
		err = r.Scan(&l.ID, &l.Numero, &l.Nome)
		return
	},
	Values: func(l domain.Line) []any { return []any{l.Numero, l.Nome} },
	WithID: func(l domain.Line, id string) domain.Line { l.ID = id; return l },
}

// Consortia maps domain.Consortium onto consorcios
var Consortia = Table[domain.Consortium]{
	Entity:   crossref.Consortium,
	Name:     "consorcios",
	Key:      "numero",
	KeyField: "numeroConsorcio",
	Columns:  []string{"numero", "nome"},
	Scan: func(r repokit.Row) (c domain.Consortium, err error) {
		err = r.Scan(&c.ID, &c.Numero, &c.Nome)
		return
	},
	Values: func(c domain.Consortium) []any { return []any{c.Numero, c.Nome} },
	WithID: func(c domain.Consortium, id string) domain.Consortium { c.ID = id; return c },
}

// Infractions maps domain.InfractionType onto infracoes
var Infractions = Table[domain.InfractionType]{
	Entity:   crossref.InfractionType,
	Name:     "infracoes",
	Key:      "codigo",
	KeyField: "codigoInfracao",
	Columns:  []string{"codigo", "nome"},
	Scan: func(r repokit.Row) (i domain.InfractionType, err error) {
		err = r.Scan(&i.ID, &i.Codigo, &i.Nome)
		return
	},
	Values: func(i domain.InfractionType) []any { return []any{i.Codigo, i.Nome} },
	WithID: func(i domain.InfractionType, id string) domain.InfractionType { i.ID = id; return i },
}
