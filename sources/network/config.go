package network

import (
	"time"

	"polyglot/sources/platform"
)

type ProxyConfig struct {
	ProxyAddress string
	ProxyUser    string
	ProxyPass    string
	Timeout      time.Duration
}

func NewProxyConfig() *ProxyConfig {
	return &ProxyConfig{
		ProxyAddress: platform.Get("PROXY_ADDRESS", ""),
		ProxyUser:    platform.Get("PROXY_USER", ""),
		ProxyPass:    platform.Get("PROXY_PASS", ""),
		Timeout:      platform.GetAsDuration("NETWORK_TIMEOUT", "30s"),
	}
}
