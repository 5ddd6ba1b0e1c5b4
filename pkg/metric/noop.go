package metric

import (
	"net/http"
	"time"
)

type (
	nopFactory struct{}
	nopHTTP    struct{}
	nopCache   struct{}
	nopStorage struct{}
)

// NewNopFactory returns a Factory whose collectors discard every
// observation. Intended for tests, where registering against a real
// prometheus registry would be noise.
func NewNopFactory() Factory {
	return nopFactory{}
}

func (nopFactory) HTTP() HTTP            { return nopHTTP{} }
func (nopFactory) Cache() Cache          { return nopCache{} }
func (nopFactory) Storage() Storage      { return nopStorage{} }
func (nopFactory) Handler() http.Handler { return http.NotFoundHandler() }

func (nopHTTP) Request(string, string, int, time.Duration)     {}
func (nopHTTP) SlowRequest(string, string, int, time.Duration) {}

func (nopCache) Hit(string)              {}
func (nopCache) Miss(string)             {}
func (nopCache) Eviction(string, string) {}
func (nopCache) Size(string, int)        {}

func (nopStorage) ObserveQuery(string, time.Duration) {}
func (nopStorage) IncrementFailures(string)           {}
