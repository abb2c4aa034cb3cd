package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	language "github.com/hanpama/schemaext/internal/language"
)

// FileSystemDiscovery implements Discovery for SDL files on disk.
type FileSystemDiscovery struct {
	metas map[string]*Metadata
}

// NewFileSystemDiscovery collects the SDL files named by paths. A directory
// is walked recursively for files with a .graphql or .graphqls extension; a
// file is taken as is.
func NewFileSystemDiscovery(ctx context.Context, paths ...string) (*FileSystemDiscovery, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema paths given")
	}
	discovery := &FileSystemDiscovery{metas: make(map[string]*Metadata)}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", root, err)
		}
		if !info.IsDir() {
			discovery.add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSDLFile(d.Name()) {
				return nil
			}
			discovery.add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %q: %w", root, err)
		}
	}
	return discovery, nil
}

func (d *FileSystemDiscovery) add(path string) {
	clean := filepath.Clean(path)
	name := strings.TrimSuffix(filepath.Base(clean), filepath.Ext(clean))
	d.metas[clean] = &Metadata{ID: clean, Name: name, FilePath: clean}
}

func isSDLFile(name string) bool {
	switch filepath.Ext(name) {
	case ".graphql", ".graphqls":
		return true
	}
	return false
}

// ListMetadata returns the discovered files.
func (d *FileSystemDiscovery) ListMetadata(ctx context.Context) ([]*Metadata, error) {
	metas := make([]*Metadata, 0, len(d.metas))
	for _, meta := range d.metas {
		metas = append(metas, meta)
	}
	return metas, nil
}

// ReadSDL reads the content of a discovered file.
func (d *FileSystemDiscovery) ReadSDL(ctx context.Context, id string) (string, error) {
	meta, ok := d.metas[id]
	if !ok {
		return "", fmt.Errorf("source %q not found", id)
	}
	content, err := os.ReadFile(meta.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read SDL for %q: %w", id, err)
	}
	return string(content), nil
}

// LoadFiles is a convenience function that discovers the SDL files under
// paths and parses them into one document.
func LoadFiles(ctx context.Context, paths ...string) (*language.Document, []string, error) {
	discovery, err := NewFileSystemDiscovery(ctx, paths...)
	if err != nil {
		return nil, nil, err
	}
	return Load(ctx, discovery)
}
