// Package projects loads the static project data shown in the project modal.
package projects

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FallbackPreview is shown when a project's preview image cannot be found.
const FallbackPreview = "images/projects/placeholder.png"

//go:embed data/projects.json
var defaultData []byte

// Project is one entry of the project data file.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Link        string   `yaml:"link"`
	Tech        []string `yaml:"tech"`
	Features    []string `yaml:"Features"`
	Path        string   `yaml:"path"`
}

// Catalog maps project identifiers to projects.
type Catalog struct {
	projects map[string]Project
	ids      []string
}

// Parse decodes a project data file. JSON input is accepted as well as YAML.
func Parse(data []byte) (*Catalog, error) {
	projects := map[string]Project{}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&projects); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse project data: %w", err)
	}

	c := &Catalog{projects: projects}
	for id := range projects {
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	return c, nil
}

// LoadFile reads a project data file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project data: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultData)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup finds a project by identifier.
func (c *Catalog) Lookup(id string) (Project, bool) {
	p, ok := c.projects[id]
	return p, ok
}

// IDs returns the project identifiers in sorted order.
func (c *Catalog) IDs() []string { return c.ids }

func (c *Catalog) Len() int { return len(c.ids) }

// Preview returns the preview image path for p, or FallbackPreview when the
// image is missing from fsys.
func Preview(p Project, fsys fs.FS) string {
	if p.Path == "" || fsys == nil {
		return FallbackPreview
	}
	if _, err := fs.Stat(fsys, p.Path); err != nil {
		return FallbackPreview
	}
	return p.Path
}
