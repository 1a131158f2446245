// Package commands is the palette of invocable actions.
package commands

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Command palette entry
type Command struct {
	ID       string
	Name     string
	Icon     string
	Hotkeys  []string
	Callback func(ctx context.Context) error
}

type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: map[string]Command{}}
}

// Add registers c. IDs are unique.
func (r *Registry) Add(c Command) error {
	if c.ID == "" {
		return fmt.Errorf("command %q has no id", c.Name)
	}
	if c.Callback == nil {
		return fmt.Errorf("command %q has no callback", c.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.cmds[c.ID]; dup {
		return fmt.Errorf("command %q already registered", c.ID)
	}
	r.cmds[c.ID] = c
	return nil
}

func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cmds[id]
	return c, ok
}

// List returns commands sorted by name.
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Command, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Run invokes the command registered under id.
func (r *Registry) Run(ctx context.Context, id string) error {
	c, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("unknown command %q", id)
	}
	return c.Callback(ctx)
}
