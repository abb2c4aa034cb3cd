package source

import (
	"context"
	"fmt"
)

type InMemorySource struct {
	Name    string
	Content string
}

// InMemoryDiscovery serves SDL held in memory. Sources keep the order they
// were given in.
type InMemoryDiscovery struct {
	metas    []*Metadata
	contents map[string]string
}

// NewInMemoryDiscovery creates a new InMemoryDiscovery instance
func NewInMemoryDiscovery(srcs []InMemorySource) *InMemoryDiscovery {
	discovery := &InMemoryDiscovery{contents: make(map[string]string)}
	for i, src := range srcs {
		id := fmt.Sprintf("%06d", i)
		discovery.metas = append(discovery.metas, &Metadata{
			ID:       id,
			Name:     src.Name,
			FilePath: src.Name + ".graphql",
		})
		discovery.contents[id] = src.Content
	}
	return discovery
}

// ListMetadata implements Discovery interface
func (d *InMemoryDiscovery) ListMetadata(ctx context.Context) ([]*Metadata, error) {
	return append([]*Metadata(nil), d.metas...), nil
}

// ReadSDL implements Discovery interface
func (d *InMemoryDiscovery) ReadSDL(ctx context.Context, id string) (string, error) {
	content, exists := d.contents[id]
	if !exists {
		return "", fmt.Errorf("source %q not found", id)
	}
	return content, nil
}
