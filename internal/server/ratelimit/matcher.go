package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for probe endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// isProbe reports whether the request is a liveness probe.
func isProbe(path, method string) bool {
	return path == "/health" && (method == http.MethodGet || method == http.MethodHead)
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// An exact path wins; otherwise the longest configured prefix ending in "/" is used,
// so "/roadmaps/" matches "/roadmaps/export". Returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if isProbe(path, method) {
		probe := unlimited
		return &probe
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}
	return best
}
