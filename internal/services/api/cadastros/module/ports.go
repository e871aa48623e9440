package module

import "fiscaliza/internal/services/api/cadastros/domain"

// Ports is what cadastros exposes to other modules
type Ports struct {
	Validator domain.Validator
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
