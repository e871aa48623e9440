// Package domain holds the reference records and the ports other modules
// consume to cross-check notices against them
package domain

// Agent is a field agent (agente fiscalizador)
type Agent struct {
	ID        string `json:"id" example:"3f0c6a1e-5b7d-4b44-9d0e-2f0f1a6d9c11"`
	Matricula string `json:"matriculaAgenteFiscalizador" validate:"required,max=20" example:"A123"`
	Nome      string `json:"nomeAgenteFiscalizador" validate:"required,max=120" example:"João da Silva"`
}

// RefKey is the registration number
func (a Agent) RefKey() string { return a.Matricula }

// RefLabel is the agent name
func (a Agent) RefLabel() string { return a.Nome }

// Vehicle is a fleet vehicle
type Vehicle struct {
	ID                string `json:"id"`
	Numero            string `json:"numeroVeiculo" validate:"required,max=20" example:"12345"`
	Placa             string `json:"placa" validate:"required,max=10" example:"ABC1D23"`
	Subconcessionaria string `json:"subconcessionaria" validate:"max=120" example:"Viação Central"`
	NumeroConsorcio   string `json:"numeroConsorcio" validate:"max=20" example:"2"`
}

// RefKey is the fleet number
func (v Vehicle) RefKey() string { return v.Numero }

// RefLabel is the plate
func (v Vehicle) RefLabel() string { return v.Placa }

// Line is a bus line
type Line struct {
	ID     string `json:"id"`
	Numero string `json:"numeroLinha" validate:"required,max=20" example:"100"`
	Nome   string `json:"nomeLinha" validate:"required,max=120" example:"Centro - Rodoviária"`
}

// RefKey is the line number
func (l Line) RefKey() string { return l.Numero }

// RefLabel is the line name
func (l Line) RefLabel() string { return l.Nome }

// Consortium is an operator consortium
type Consortium struct {
	ID     string `json:"id"`
	Numero string `json:"numeroConsorcio" validate:"required,max=20" example:"2"`
	Nome   string `json:"nomeConsorcio" validate:"required,max=120" example:"Consórcio Norte"`
}

// RefKey is the consortium number
func (c Consortium) RefKey() string { return c.Numero }

// RefLabel is the consortium name
func (c Consortium) RefLabel() string { return c.Nome }

// InfractionType is a catalogued infraction
type InfractionType struct {
	ID     string `json:"id"`
	Codigo string `json:"codigoInfracao" validate:"required,max=20" example:"501"`
	Nome   string `json:"nomeInfracao" validate:"required,max=200" example:"Atraso na partida"`
}

// RefKey is the infraction code
func (i InfractionType) RefKey() string { return i.Codigo }

// RefLabel is the infraction name
func (i InfractionType) RefLabel() string { return i.Nome }
