// Package career classifies a user's interests and skills into a career domain and
// assembles a personalized learning roadmap from a static template catalog.
package career

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/career-mentor/internal/types"
)

// FallbackDomain is used when no keyword matches and when a domain has no template.
const FallbackDomain = "Web Development"

//go:embed data/*.json
var dataFiles embed.FS

// DomainKeywords is one entry of the domain keyword catalog.
type DomainKeywords struct {
	Domain   string   `json:"domain"`
	Keywords []string `json:"keywords"`
}

// Catalog pairs the ordered domain keyword list with the roadmap templates.
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	domains   []DomainKeywords
	templates map[string]types.CareerRoadmap
	order     []string
}

// NewCatalog builds a catalog from keyword entries and templates.
// Keyword order is preserved; it decides scoring ties and the AllDomains order.
// Keywords are stored lowercased so matching is case-insensitive.
// The templates must include one for FallbackDomain.
func NewCatalog(domains []DomainKeywords, templates []types.CareerRoadmap) (*Catalog, error) {
	c := &Catalog{
		domains:   make([]DomainKeywords, 0, len(domains)),
		templates: make(map[string]types.CareerRoadmap, len(templates)),
		order:     make([]string, 0, len(templates)),
	}

	seen := make(map[string]bool, len(domains))
	for _, d := range domains {
		if d.Domain == "" {
			return nil, &CatalogError{Message: "domain entry with empty name"}
		}
		if seen[d.Domain] {
			return nil, &CatalogError{Message: fmt.Sprintf("duplicate domain %q", d.Domain)}
		}
		seen[d.Domain] = true
		keywords := make([]string, len(d.Keywords))
		for i, k := range d.Keywords {
			keywords[i] = strings.ToLower(k)
		}
		c.domains = append(c.domains, DomainKeywords{Domain: d.Domain, Keywords: keywords})
	}

	for i := range templates {
		t := templates[i]
		if t.Domain == "" {
			return nil, &CatalogError{Message: fmt.Sprintf("template %d has no domain", i)}
		}
		if _, dup := c.templates[t.Domain]; dup {
			return nil, &CatalogError{Message: fmt.Sprintf("duplicate template %q", t.Domain)}
		}
		if !slices.Equal(t.PhaseNames(), types.PhaseOrder) {
			return nil, &CatalogError{Message: fmt.Sprintf("template %q phases %v, want %v", t.Domain, t.PhaseNames(), types.PhaseOrder)}
		}
		c.templates[t.Domain] = t.Clone()
		c.order = append(c.order, t.Domain)
	}

	if _, ok := c.templates[FallbackDomain]; !ok {
		return nil, &CatalogError{Message: fmt.Sprintf("missing %q template", FallbackDomain)}
	}
	return c, nil
}

// LoadCatalog parses the JSON encodings of the keyword list and template list.
func LoadCatalog(domainsJSON, templatesJSON []byte) (*Catalog, error) {
	var domains []DomainKeywords
	if err := json.Unmarshal(domainsJSON, &domains); err != nil {
		return nil, &CatalogError{Message: "failed to parse domain keywords", Cause: err}
	}
	var templates []types.CareerRoadmap
	if err := json.Unmarshal(templatesJSON, &templates); err != nil {
		return nil, &CatalogError{Message: "failed to parse roadmap templates", Cause: err}
	}
	return NewCatalog(domains, templates)
}

var defaultCatalog = mustLoadEmbedded()

func mustLoadEmbedded() *Catalog {
	domainsJSON, err := dataFiles.ReadFile("data/domains.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded domains: %v", err))
	}
	templatesJSON, err := dataFiles.ReadFile("data/templates.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read embedded templates: %v", err))
	}
	c, err := LoadCatalog(domainsJSON, templatesJSON)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
	}
	return c
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Domains returns every domain name in declaration order.
func (c *Catalog) Domains() []string {
	names := make([]string, len(c.domains))
	for i, d := range c.domains {
		names[i] = d.Domain
	}
	return names
}

// Keywords returns a copy of the keyword list for domain.
func (c *Catalog) Keywords(domain string) ([]string, bool) {
	for _, d := range c.domains {
		if d.Domain == domain {
			return slices.Clone(d.Keywords), true
		}
	}
	return nil, false
}

// TemplateDomains lists the domains that have a concrete roadmap template, in catalog order.
func (c *Catalog) TemplateDomains() []string {
	return slices.Clone(c.order)
}

// Template returns a deep copy of the template for domain.
func (c *Catalog) Template(domain string) (types.CareerRoadmap, bool) {
	t, ok := c.templates[domain]
	if !ok {
		return types.CareerRoadmap{}, false
	}
	return t.Clone(), true
}

// AllTemplates returns deep copies of every template in catalog order.
func (c *Catalog) AllTemplates() []types.CareerRoadmap {
	out := make([]types.CareerRoadmap, 0, len(c.order))
	for _, name := range c.order {
		t := c.templates[name]
		out = append(out, t.Clone())
	}
	return out
}

// AllDomains returns the embedded catalog's domain names in declaration order.
func AllDomains() []string {
	return defaultCatalog.Domains()
}

// Templates returns the embedded catalog's template domain names.
func Templates() []string {
	return defaultCatalog.TemplateDomains()
}
