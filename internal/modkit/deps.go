package modkit

import (
	"fiscaliza/internal/modkit/repokit"
	"fiscaliza/internal/platform/config"
	"fiscaliza/internal/platform/logger"
	ptime "fiscaliza/internal/platform/time"
)

// Deps holds the shared dependencies handed to every module.
// CH is nil when ClickHouse is disabled
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    repokit.Clickhouse
	Clock ptime.Clock
}

// ClockOrSystem returns d.Clock, or the wall clock when unset
func (d Deps) ClockOrSystem() ptime.Clock {
	if d.Clock == nil {
		return ptime.System()
	}
	return d.Clock
}
