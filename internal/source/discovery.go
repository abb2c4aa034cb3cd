// Package source finds and reads SDL sources.
package source

import (
	"context"
	"fmt"
	"sort"

	language "github.com/hanpama/schemaext/internal/language"
)

type Metadata struct {
	// ID identifies the source within its discovery. Sources are loaded in ID
	// order.
	ID   string
	Name string
	// FilePath is reported in positions of parse and validation errors.
	FilePath string
}

type Discovery interface {
	ListMetadata(ctx context.Context) ([]*Metadata, error)
	ReadSDL(ctx context.Context, id string) (string, error)
}

// Load reads every source of d and parses them into one document. It also
// returns the file paths of the sources, in load order.
func Load(ctx context.Context, d Discovery) (*language.Document, []string, error) {
	metas, err := d.ListMetadata(ctx)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })

	sources := make([]*language.Source, 0, len(metas))
	paths := make([]string, 0, len(metas))
	for _, meta := range metas {
		content, err := d.ReadSDL(ctx, meta.ID)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, &language.Source{Name: meta.FilePath, Input: content})
		paths = append(paths, meta.FilePath)
	}
	doc, err := language.ParseDocuments(sources...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse SDL: %w", err)
	}
	return doc, paths, nil
}
