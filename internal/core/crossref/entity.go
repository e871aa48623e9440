package crossref

import "strings"

// Entity names a reference table
type Entity string

// Reference tables known to the notice form
const (
	Agent          Entity = "agente"
	Vehicle        Entity = "veiculo"
	Line           Entity = "linha"
	Consortium     Entity = "consorcio"
	InfractionType Entity = "infracao"
)

var notFoundLabels = map[Entity]string{
	Agent:          "Agente não cadastrado",
	Vehicle:        "Veículo não cadastrado",
	Line:           "Linha não cadastrada",
	Consortium:     "Consórcio não cadastrado",
	InfractionType: "Infração não cadastrada",
}

// fallback for entities outside the table above
const unknownNotFound = "Registro não cadastrado"

// Entities returns every reference table in form order
func Entities() []Entity {
	return []Entity{Agent, Vehicle, Line, Consortium, InfractionType}
}

// NotFoundLabel is the fixed label reported when a key has no match
func (e Entity) NotFoundLabel() string {
	if l, ok := notFoundLabels[e]; ok {
		return l
	}
	return unknownNotFound
}

// Valid reports whether e is a known reference table
func (e Entity) Valid() bool {
	_, ok := notFoundLabels[e]
	return ok
}

// ParseEntity accepts singular names and the plural route segments
// (agentes, veiculos, linhas, consorcios, infracoes)
func ParseEntity(s string) (Entity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "agente", "agentes":
		return Agent, true
	case "veiculo", "veiculos":
		return Vehicle, true
	case "linha", "linhas":
		return Line, true
	case "consorcio", "consorcios":
		return Consortium, true
	case "infracao", "infracoes":
		return InfractionType, true
	}
	return "", false
}

// Plural returns the route segment for e
func (e Entity) Plural() string {
	switch e {
	case Agent:
		return "agentes"
	case Vehicle:
		return "veiculos"
	case Line:
		return "linhas"
	case Consortium:
		return "consorcios"
	case InfractionType:
		return "infracoes"
	}
	return string(e)
}
