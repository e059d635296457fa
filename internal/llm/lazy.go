package llm

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lazy holds a summarization client that is built on first use and then
// shared by every request for the life of the process. Concurrent first
// requests are collapsed into a single initialization.
type Lazy struct {
	config *Config
	apiKey string

	group  singleflight.Group
	mu     sync.RWMutex
	client Client
}

// NewLazy returns a Lazy handle that will construct a client for the given
// configuration on first Get.
func NewLazy(config *Config, apiKey string) *Lazy {
	return &Lazy{config: config, apiKey: apiKey}
}

// NewLazyWithClient returns a handle wrapping an already-constructed client.
func NewLazyWithClient(config *Config, client Client) *Lazy {
	return &Lazy{config: config, client: client}
}

// Get returns the shared client, constructing it if necessary. A failed
// construction is not cached; the next call retries.
func (l *Lazy) Get(ctx context.Context) (Client, error) {
	l.mu.RLock()
	client := l.client
	l.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	v, err, _ := l.group.Do("init", func() (any, error) {
		c, err := NewClient(ctx, l.config, l.apiKey)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.client = c
		l.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Client), nil
}

// Close shuts down the underlying client if it was ever initialized.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client == nil {
		return nil
	}
	err := l.client.Close()
	l.client = nil
	return err
}

// Label reports the service label for a variant without forcing
// initialization.
func (l *Lazy) Label(variant Variant) string {
	return l.config.Spec(variant).Label
}
