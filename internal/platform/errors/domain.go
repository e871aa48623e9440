package errors

import (
	stderrs "errors"

	"fiscaliza/internal/core/daterange"
	"fiscaliza/internal/core/numbering"
)

// FromDomain maps errors of the core packages to project errors. Anything
// else is returned unchanged
func FromDomain(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	var (
		md *daterange.MalformedDateError
		mn *numbering.MalformedNumberError
	)
	switch {
	case stderrs.Is(err, numbering.ErrEmptyReference):
		return Wrap(err, ErrorCodeConflict, "nenhuma irregularidade cadastrada; não é possível sugerir o próximo número")
	case stderrs.Is(err, numbering.ErrYearOutOfRange):
		return Wrap(err, ErrorCodeInvalidArgument, "ano fora do intervalo 0000-9999")
	case stderrs.As(err, &mn):
		return Wrapf(err, ErrorCodeConflict, "número de irregularidade armazenado inválido: %q", mn.Value)
	case stderrs.As(err, &md):
		out := Wrapf(err, ErrorCodeInvalidArgument, "data inválida: %q (use dd/mm/aaaa)", md.Value)
		if md.Field != "" {
			out = WithField(out, md.Field)
		}
		return out
	}
	return err
}
