// Package domain holds DTOs for the notice analytics
package domain

import (
	"context"

	"fiscaliza/internal/core/crossref"
)

// YearInput selects one calendar year
type YearInput struct {
	Ano int `json:"ano" validate:"required,min=1900,max=9999" example:"2024"`
}

// ByInfractionRow is the net notice count of one infraction code
type ByInfractionRow struct {
	CodigoInfracao string `json:"codigoInfracao" example:"501"`
	NomeInfracao   string `json:"nomeInfracao" example:"Atraso"`
	Total          int64  `json:"total" example:"12"`
}

// ByMonthRow is the net notice count of one month
type ByMonthRow struct {
	Mes   int   `json:"mes" example:"3"`
	Total int64 `json:"total" example:"40"`
}

// References resolves infraction names; optional
type References interface {
	Validate(ctx context.Context, entity crossref.Entity, key string) (crossref.Result, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ByInfraction(ctx context.Context, in YearInput) ([]ByInfractionRow, error)
	ByMonth(ctx context.Context, in YearInput) ([]ByMonthRow, error)
}
