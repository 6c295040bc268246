// Package projects holds the bot's static project and maintainer
// registry. It is loaded once at startup, from a TOML file or from a
// built-in default document, and is never mutated afterwards.
package projects

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultKey is the project key that every registry is guaranteed
// to contain. Project lookups for unknown keys fall back to it.
const DefaultKey = "default"

// Project describes one open-source project the bot can answer
// questions about.
type Project struct {
	Key         string   `toml:"-"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	DocsURL     string   `toml:"docs_url"`
	GitHubURL   string   `toml:"github_url"`
	Maintainers []string `toml:"maintainers"`
}

// Organization describes the community that owns the projects.
type Organization struct {
	Name      string `toml:"name"`
	Website   string `toml:"website"`
	DocsURL   string `toml:"docs_url"`
	GitHubURL string `toml:"github_url"`
	JoinURL   string `toml:"join_url"`
	AgendaURL string `toml:"agenda_url"`
}

type fileConfig struct {
	Organization Organization       `toml:"organization"`
	Projects     map[string]Project `toml:"projects"`
}

// Registry is an immutable view of the organization's projects.
// Its accessors preserve the declaration order of the source document,
// so replies built from it are deterministic.
type Registry struct {
	org      Organization
	keys     []string
	projects map[string]Project
}

// Load reads a project registry from the TOML file at the given path.
// An empty path loads the built-in default document instead.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects config %q: %w", path, err)
	}

	return newRegistry(cfg, md), nil
}

// Default returns the registry built from the document compiled into
// the binary.
func Default() *Registry {
	var cfg fileConfig
	md, err := toml.Decode(defaultConfig, &cfg)
	if err != nil {
		// The embedded document is a compile-time constant.
		panic(fmt.Sprintf("invalid built-in projects config: %v", err))
	}
	return newRegistry(cfg, md)
}

// newRegistry indexes the decoded document. The TOML metadata reports
// keys in document order, which fixes the iteration order of the
// otherwise unordered projects map.
func newRegistry(cfg fileConfig, md toml.MetaData) *Registry {
	r := &Registry{
		org:      cfg.Organization,
		projects: make(map[string]Project, len(cfg.Projects)),
	}

	for _, k := range md.Keys() {
		if len(k) != 2 || k[0] != "projects" {
			continue
		}
		p, ok := cfg.Projects[k[1]]
		if !ok {
			continue
		}
		p.Key = k[1]
		r.keys = append(r.keys, p.Key)
		r.projects[p.Key] = p
	}

	if _, ok := r.projects[DefaultKey]; !ok {
		p := fallbackProject
		r.keys = append(r.keys, p.Key)
		r.projects[p.Key] = p
	}

	return r
}

// fallbackProject backs the mandatory "default" entry when the source
// document omits it.
var fallbackProject = Project{
	Key:         DefaultKey,
	Name:        "KubeStellar",
	Description: "A flexible solution for multi-cluster configuration management for edge, multi-cloud, and hybrid cloud.",
	DocsURL:     "https://docs.kubestellar.io/",
	GitHubURL:   "https://github.com/kubestellar/kubestellar",
	Maintainers: []string{"Andy Anderson"},
}

// Get looks up a project by key, falling back to the "default" entry
// for unknown keys. The second return value is false only when the
// registry has no default entry either.
func (r *Registry) Get(key string) (Project, bool) {
	if p, ok := r.projects[key]; ok {
		return p, true
	}
	if p, ok := r.projects[DefaultKey]; ok {
		return p, true
	}
	return Project{}, false
}

// Keys returns the project keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Projects returns all projects in declaration order.
func (r *Registry) Projects() []Project {
	ps := make([]Project, 0, len(r.keys))
	for _, k := range r.keys {
		ps = append(ps, r.projects[k])
	}
	return ps
}

// Maintainers returns every maintainer across all projects exactly
// once, in declaration order of the projects and insertion order
// within each project.
func (r *Registry) Maintainers() []string {
	seen := make(map[string]bool)
	var all []string
	for _, k := range r.keys {
		for _, m := range r.projects[k].Maintainers {
			if seen[m] {
				continue
			}
			seen[m] = true
			all = append(all, m)
		}
	}
	return all
}

// Org returns the organization metadata.
func (r *Registry) Org() Organization {
	return r.org
}

// FormatMaintainers renders a maintainer list for display: each name
// gets an "@" prefix unless it already has one, joined with commas.
func FormatMaintainers(maintainers []string) string {
	if len(maintainers) == 0 {
		return "No maintainers assigned"
	}

	formatted := make([]string, len(maintainers))
	for i, m := range maintainers {
		if strings.HasPrefix(m, "@") {
			formatted[i] = m
		} else {
			formatted[i] = "@" + m
		}
	}
	return strings.Join(formatted, ", ")
}
