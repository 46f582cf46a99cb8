package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/Algebra/internal/types"
)

// Provider is implemented by anything that exposes tools through the registry.
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry holds registered providers and routes tool calls to them.
// Tool IDs are namespaced as "<service>.<tool>".
type Registry struct {
	providers sync.Map
}

// Stats summarizes registry contents.
type Stats struct {
	Services   int            `json:"services"`
	Tools      int            `json:"tools"`
	Categories map[string]int `json:"categories"`
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a provider under its definition ID.
func (r *Registry) Register(p Provider) error {
	def := p.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	r.providers.Store(def.ID, p)
	return nil
}

// Unregister removes a provider.
func (r *Registry) Unregister(serviceID string) {
	r.providers.Delete(serviceID)
}

// Get retrieves a provider by service ID.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	v, ok := r.providers.Load(serviceID)
	if !ok {
		return nil, false
	}
	return v.(Provider), true
}

func (r *Registry) each(fn func(types.Service)) {
	r.providers.Range(func(_, v interface{}) bool {
		fn(v.(Provider).Definition())
		return true
	})
}

// List returns service definitions, optionally filtered by category.
func (r *Registry) List(category *types.Category) []types.Service {
	var out []types.Service
	r.each(func(def types.Service) {
		if category == nil || def.Category == *category {
			out = append(out, def)
		}
	})
	return out
}

// Discover ranks services against a free-form intent and returns the top
// matches. Services with zero relevance are omitted.
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type match struct {
		def   types.Service
		score int
	}

	intent = strings.ToLower(intent)
	var matches []match
	r.each(func(def types.Service) {
		if s := relevance(intent, def); s > 0 {
			matches = append(matches, match{def: def, score: s})
		}
	})

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > len(matches) {
		limit = len(matches)
	}
	out := make([]types.Service, 0, limit)
	for _, m := range matches[:limit] {
		out = append(out, m.def)
	}
	return out
}

// relevance scores a service against a lowercased intent. Identity hits
// outweigh description and capability hits so exact service mentions rank
// first.
func relevance(intent string, def types.Service) int {
	score := 0

	if strings.Contains(intent, def.ID) || strings.Contains(intent, strings.ToLower(def.Name)) {
		score += 10
	}
	for _, word := range strings.Fields(strings.ToLower(def.Description)) {
		if strings.Contains(intent, word) {
			score += 5
		}
	}
	for _, capability := range def.Capabilities {
		if strings.Contains(intent, strings.ReplaceAll(strings.ToLower(capability), "_", " ")) {
			score += 3
		}
	}
	for _, tool := range def.Tools {
		if strings.Contains(intent, strings.ToLower(tool.Name)) {
			score += 3
		}
	}
	if strings.Contains(intent, string(def.Category)) {
		score += 2
	}

	return score
}

// Execute resolves the service from the tool ID prefix and dispatches to it.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return failure("invalid tool ID format: %s", toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		return failure("service not found: %s", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats tallies registered services, tools, and categories.
func (r *Registry) Stats() Stats {
	stats := Stats{Categories: make(map[string]int)}
	r.each(func(def types.Service) {
		stats.Services++
		stats.Tools += len(def.Tools)
		stats.Categories[string(def.Category)]++
	})
	return stats
}

func failure(format string, args ...interface{}) (*types.Result, error) {
	msg := fmt.Sprintf(format, args...)
	return &types.Result{Success: false, Error: &msg}, fmt.Errorf("%s", msg)
}
