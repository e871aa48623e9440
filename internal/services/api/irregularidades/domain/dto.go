// Package domain holds the notice records (irregularidades) and the inputs
// and outputs of their workflows
package domain

import (
	"time"

	"fiscaliza/internal/core/crossref"
)

// Notice is one transit violation notice. Dates are dd/mm/aaaa as typed by
// the clerk and horario is HH:MM
type Notice struct {
	ID                          string `json:"id" example:"6b2f1c9e-0d3a-4c55-8f1e-9a7b2c3d4e5f"`
	NumeroIrregularidade        string `json:"numeroIrregularidade" validate:"required,digitos,max=20" example:"202400042"`
	DataIrregularidade          string `json:"dataIrregularidade" validate:"required,data_br" example:"15/03/2024"`
	Horario                     string `json:"horario" validate:"required,datetime=15:04" example:"08:30"`
	Local                       string `json:"local" validate:"required,max=200" example:"Av. Central"`
	NumeroLocal                 string `json:"numeroLocal" validate:"max=20" example:"1200"`
	Bairro                      string `json:"bairro" validate:"required,max=120" example:"Centro"`
	Descricao                   string `json:"descricao" validate:"required,max=2000" example:"Veículo não parou no ponto"`
	DataEmissao                 string `json:"dataEmissao" validate:"required,data_br" example:"16/03/2024"`
	PrazoCumprimentoConferencia string `json:"prazoCumprimentoConferencia" validate:"required,data_br" example:"31/03/2024"`
	MatAgenteConferente         string `json:"matAgenteConferente" validate:"required,max=20" example:"B456"`
	MatriculaAgente             string `json:"matriculaAgente" validate:"required,max=20" example:"A123"`
	CodigoInfracao              string `json:"codigoInfracao" validate:"required,max=20" example:"501"`
	NumeroLinha                 string `json:"numeroLinha" validate:"required,max=20" example:"100"`
	NumeroVeiculo               string `json:"numeroVeiculo" validate:"required,max=20" example:"12345"`
	NumeroConsorcio             string `json:"numeroConsorcio" validate:"required,max=20" example:"2"`
	PlacaVeiculo                string `json:"placaVeiculo" validate:"max=10" example:"ABC1D23"`
	Subconcessionaria           string `json:"subconcessionaria" validate:"max=120" example:"Viação Central"`
}

// SearchText returns the fields free text search looks at
func (n Notice) SearchText() []string {
	return []string{
		n.NumeroIrregularidade, n.DataIrregularidade, n.Local, n.Bairro, n.Descricao,
		n.MatriculaAgente, n.CodigoInfracao, n.NumeroLinha, n.NumeroVeiculo, n.PlacaVeiculo,
		n.Subconcessionaria,
	}
}

// QueryInput selects notices by number or by period. Exactly one of the two
// must be given; Busca narrows either selection
type QueryInput struct {
	Numero        string `json:"numeroIrregularidade" validate:"omitempty,max=20" example:"202400042"`
	DataInicio    string `json:"dataInicio" example:"01/03/2024"`
	DataFim       string `json:"dataFim" example:"31/03/2024"`
	Busca         string `json:"busca" validate:"max=200" example:"centro"`
	Pagina        int    `json:"pagina" validate:"min=0" example:"1"`
	TamanhoPagina int    `json:"tamanhoPagina" validate:"min=0,max=500" example:"25"`
}

// Page is one page of a query. Total counts every match before paging
type Page struct {
	Items []Notice
	Total int
	Page  int
	Size  int
}

// NextNumber is the suggested number for a new notice. It is advisory: the
// unique constraint on the number decides when two clerks race
type NextNumber struct {
	Numero string `json:"numeroIrregularidade" example:"202400043"`
	Ano    int    `json:"ano" example:"2024"`
}

// ValidateInput carries the five reference keys of a draft notice
type ValidateInput struct {
	MatriculaAgente string `json:"matriculaAgente" validate:"required" example:"A123"`
	NumeroLinha     string `json:"numeroLinha" validate:"required" example:"100"`
	CodigoInfracao  string `json:"codigoInfracao" validate:"required" example:"501"`
	NumeroVeiculo   string `json:"numeroVeiculo" validate:"required" example:"12345"`
	NumeroConsorcio string `json:"numeroConsorcio" validate:"required" example:"2"`
}

// ValidationReport is the outcome of the five cross-reference checks
type ValidationReport struct {
	Agente    crossref.Result `json:"agente"`
	Linha     crossref.Result `json:"linha"`
	Infracao  crossref.Result `json:"infracao"`
	Veiculo   crossref.Result `json:"veiculo"`
	Consorcio crossref.Result `json:"consorcio"`
	Valido    bool            `json:"valido" example:"true"`
}

// Selection modes of the print sheet and the protocol
const (
	ModeBatch         = "lote"
	ModeSingle        = "unitaria"
	ModeProtocolBatch = "porLote"
)

// PrintInput selects the notices of a print sheet
type PrintInput struct {
	Tipo       string `json:"tipo" validate:"required,oneof=lote unitaria" example:"lote"`
	DataInicio string `json:"dataInicio" example:"01/03/2024"`
	DataFim    string `json:"dataFim" example:"31/03/2024"`
	Numero     string `json:"numeroIrregularidade" example:"202400042"`
}

// PrintItem is a notice with its reference labels resolved
type PrintItem struct {
	Notice
	NomeAgente           string `json:"nomeAgente" example:"João da Silva"`
	NomeAgenteConferente string `json:"nomeAgenteConferente" example:"Maria Souza"`
	NomeInfracao         string `json:"nomeInfracao" example:"Atraso"`
	NomeLinha            string `json:"nomeLinha" example:"Centro - Rodoviária"`
	PlacaCadastrada      string `json:"placaCadastrada" example:"ABC1D23"`
	NomeConsorcio        string `json:"nomeConsorcio" example:"Consórcio Norte"`
}

// PrintSheet is the printable set of notices
type PrintSheet struct {
	Tipo  string      `json:"tipo" example:"lote"`
	Itens []PrintItem `json:"itens"`
}

// ProtocolInput selects the notices of a delivery protocol
type ProtocolInput struct {
	Tipo            string `json:"tipo" validate:"required,oneof=porLote unitaria" example:"porLote"`
	DataInicio      string `json:"dataInicio" example:"01/03/2024"`
	DataFim         string `json:"dataFim" example:"31/03/2024"`
	Numero          string `json:"numeroIrregularidade" example:"202400042"`
	DataConferencia string `json:"dataConferencia" validate:"required,data_br" example:"20/03/2024"`
}

// Protocol lists the notice numbers handed over on dataConferencia
type Protocol struct {
	Tipo            string   `json:"tipo" example:"porLote"`
	DataConferencia string   `json:"dataConferencia" example:"20/03/2024"`
	Numeros         []string `json:"protocolosNotificacao"`
	Quantidade      int      `json:"quantidade" example:"12"`
}

// Event kinds; analytics count criada as +1 and excluida as -1
const (
	EventCreated = "criada"
	EventDeleted = "excluida"
)

// NoticeEvent is appended to the analytics store when a notice is created
// or removed
type NoticeEvent struct {
	ID             string
	NoticeID       string
	Numero         string
	Tipo           string
	CodigoInfracao string
	Ano            int
	Mes            int
	Matricula      string
	OcorridoEm     time.Time
}
