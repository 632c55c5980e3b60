package external

import (
	"polyglot/sources/platform"
)

type OutsidersConfig struct {
	StartupPort int
	MetricsPort int
}

func NewOutsidersConfig() *OutsidersConfig {
	return &OutsidersConfig{
		StartupPort: platform.GetAsInt("OUTSIDERS_STARTUP_PORT", 10000),
		MetricsPort: platform.GetAsInt("OUTSIDERS_METRICS_PORT", 10001),
	}
}
