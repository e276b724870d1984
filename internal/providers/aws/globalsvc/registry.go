package globalsvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// Builder produces the panel summary for one global service. A (nil, nil)
// return means the service has nothing to show and gets no panel; an error
// means the service could not be queried and is dropped the same way.
type Builder func(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error)

// NamedBuilder pairs a builder with the service name it is registered under.
// The name is what --services matches against.
type NamedBuilder struct {
	Name  string
	Build Builder
}

// Registry holds the panel builders in registration order. Registration
// order is rendering order, so panels appear in a stable sequence no matter
// which services respond.
type Registry struct {
	builders []NamedBuilder
	index    map[string]struct{}
}

// NewRegistry returns an empty builder registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]struct{})}
}

// Register adds a builder under the given service name. Names are
// case-insensitive. Registration happens at program start from static
// wiring, so a duplicate or empty name is a programming error and panics.
func (r *Registry) Register(name string, build Builder) {
	key := normalizeServiceName(name)
	if key == "" {
		panic("globalsvc: register with empty service name")
	}
	if build == nil {
		panic(fmt.Sprintf("globalsvc: nil builder for service %q", key))
	}
	if _, ok := r.index[key]; ok {
		panic(fmt.Sprintf("duplicate global service builder: %q", key))
	}
	r.index[key] = struct{}{}
	r.builders = append(r.builders, NamedBuilder{Name: key, Build: build})
}

// Builders returns all registered builders in registration order.
func (r *Registry) Builders() []NamedBuilder {
	out := make([]NamedBuilder, len(r.builders))
	copy(out, r.builders)
	return out
}

// Names returns the registered service names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for _, b := range r.builders {
		names = append(names, b.Name)
	}
	return names
}

// Filter returns the builders whose names appear in the allowlist, keeping
// registration order. An empty allowlist selects every builder. A name that
// matches no registered builder is an error so a typo on the command line
// does not silently drop a panel.
func (r *Registry) Filter(allowlist []string) ([]NamedBuilder, error) {
	if len(allowlist) == 0 {
		return r.Builders(), nil
	}

	wanted := make(map[string]struct{}, len(allowlist))
	for _, name := range allowlist {
		key := normalizeServiceName(name)
		if key == "" {
			continue
		}
		if _, ok := r.index[key]; !ok {
			return nil, fmt.Errorf("unknown service %q (valid services: %s)", name, strings.Join(r.Names(), ", "))
		}
		wanted[key] = struct{}{}
	}

	out := make([]NamedBuilder, 0, len(wanted))
	for _, b := range r.builders {
		if _, ok := wanted[b.Name]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func normalizeServiceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
