// Package plugins is the registry commands use to reach optional
// capabilities by id.
package plugins

import (
	"sort"
	"sync"

	"github.com/ramanasai/dailynote/internal/dates"
)

// NaturalLanguageDates is the id of the date parsing capability.
const NaturalLanguageDates = "nldates"

// DateParser turns a phrase such as "next friday" into a date.
type DateParser interface {
	ParseDate(text string) dates.Result
}

// Registry holds the enabled plugins. The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]DateParser
}

func NewRegistry() *Registry {
	return &Registry{parsers: map[string]DateParser{}}
}

// Register enables p under id, replacing any previous registration.
func (r *Registry) Register(id string, p DateParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.parsers == nil {
		r.parsers = map[string]DateParser{}
	}
	r.parsers[id] = p
}

// Disable removes id; later lookups report it as unavailable.
func (r *Registry) Disable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parsers, id)
}

// GetPlugin returns the plugin registered under id. ok is false when the
// plugin is not enabled.
func (r *Registry) GetPlugin(id string) (p DateParser, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok = r.parsers[id]
	return p, ok
}

// Enabled lists the registered ids in sorted order.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.parsers))
	for id := range r.parsers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
