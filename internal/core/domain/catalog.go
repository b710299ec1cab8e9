package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// CelebrantUnset is the sentinel first entry of the celebrant roster. It is
// what the selector shows before anyone picked a value; it is never persisted.
const CelebrantUnset = "Selecionar..."

// CelebrantPlaceholder is the display text for an unset celebrant in the
// printed report.
const CelebrantPlaceholder = "---"

// Community is one parish community with its fixed Sunday mass times.
type Community struct {
	Name  string   `yaml:"name"`
	Times []string `yaml:"times"`
}

// Catalog is the static ordered set of communities. Order is significant:
// the editing surface and both exports walk it in declaration order.
type Catalog struct {
	Communities []Community
}

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Validate checks the catalog against the constraints the slot key scheme
// relies on: unique community names without the key separator, and at least
// one well-formed HH:MM time per community.
func (c Catalog) Validate() error {
	if len(c.Communities) == 0 {
		return fmt.Errorf("catalog has no communities")
	}
	seen := make(map[string]bool, len(c.Communities))
	for _, community := range c.Communities {
		if community.Name == "" {
			return fmt.Errorf("catalog has a community without a name")
		}
		if strings.Contains(community.Name, "_") {
			return fmt.Errorf("community name %q contains the reserved key separator '_'", community.Name)
		}
		if seen[community.Name] {
			return fmt.Errorf("duplicate community name %q", community.Name)
		}
		seen[community.Name] = true
		if len(community.Times) == 0 {
			return fmt.Errorf("community %q has no mass times", community.Name)
		}
		for _, t := range community.Times {
			if !timeOfDayRe.MatchString(t) {
				return fmt.Errorf("community %q has malformed mass time %q", community.Name, t)
			}
		}
	}
	return nil
}

// SlotsPerSunday returns the total number of mass slots every Sunday has.
func (c Catalog) SlotsPerSunday() int {
	n := 0
	for _, community := range c.Communities {
		n += len(community.Times)
	}
	return n
}

// DefaultCatalog returns the built-in 2026 community catalog.
func DefaultCatalog() Catalog {
	return Catalog{Communities: []Community{
		{Name: "Santa Monica", Times: []string{"07:00", "09:00"}},
		{Name: "São Francisco", Times: []string{"07:00"}},
		{Name: "São Miguel", Times: []string{"07:00", "08:45"}},
		{Name: "Santa Teresa C.", Times: []string{"07:30"}},
		{Name: "Santa Isabel", Times: []string{"07:00"}},
		{Name: "São João Batista", Times: []string{"07:30"}},
		{Name: "São Teodósio", Times: []string{"07:30"}},
		{Name: "Maria Auxiliadora", Times: []string{"07:30"}},
		{Name: "N.S Fátima", Times: []string{"08:00"}},
		{Name: "N.S Lurdes", Times: []string{"07:30"}},
	}}
}

// DefaultCelebrants returns the built-in celebrant roster, with the unset
// sentinel first so selectors can default to it.
func DefaultCelebrants() []string {
	return []string{
		CelebrantUnset,
		"Pe. Pasquale", "Pe. Márcio", "Pe. Stefano", "Pe. Roberto",
		"Pe. Antonio", "Pe. Massimo", "Pe. Pinto", "Pe José Angel",
		"Celebração Ir. Felicia", "Celebração Ir. Marilda", "Celebração", "Ninguém",
	}
}
