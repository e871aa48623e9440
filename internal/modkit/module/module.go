// Package module defines the contract every API module satisfies and the
// lookups used to wire one module's ports into another
package module

import phttp "fiscaliza/internal/platform/net/http"

// Module is the minimal contract used by modkit. It lives apart from modkit
// so a module can export its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
