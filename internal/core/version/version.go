// Package version reports the build stamped into the binaries
package version

import "runtime"

// BuildInfo describes one binary build
type BuildInfo struct {
	Service   string `json:"servico"`
	Version   string `json:"versao"`
	Commit    string `json:"commit"`
	Date      string `json:"data"`
	GoVersion string `json:"go"`
}

// Info returns the build of the named binary. Values are stamped at link time:
//
//	-ldflags "-X fiscaliza/internal/core/version.version=v1.2.0
//	          -X fiscaliza/internal/core/version.commit=abcd
//	          -X fiscaliza/internal/core/version.date=2026-01-31"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
