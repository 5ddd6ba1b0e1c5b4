package metric

import (
	"net/http"
	"time"
)

type (
	// HTTP observes inbound request traffic.
	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	// Cache observes the order cache.
	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType, reason string)
		Size(cacheType string, size int)
	}

	// Storage observes database queries.
	Storage interface {
		ObserveQuery(operation string, duration time.Duration)
		IncrementFailures(operation string)
	}

	Factory interface {
		HTTP() HTTP
		Cache() Cache
		Storage() Storage
		Handler() http.Handler
	}
)
