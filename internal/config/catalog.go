package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// catalogFile is the YAML shape of ROSTER_CATALOG_FILE. Both sections are
// optional; an omitted section keeps the built-in default.
type catalogFile struct {
	Communities []domain.Community `yaml:"communities"`
	Celebrants  []string           `yaml:"celebrants"`
}

// LoadCatalog returns the community catalog and celebrant roster, either the
// built-in 2026 defaults or the ones from the configured YAML file. The
// catalog is validated here so key-scheme constraints (no '_' in community
// names) fail at startup instead of corrupting keys later.
func (c *Config) LoadCatalog() (domain.Catalog, []string, error) {
	catalog := domain.DefaultCatalog()
	celebrants := domain.DefaultCelebrants()

	if c.Roster.CatalogFile != "" {
		raw, err := os.ReadFile(c.Roster.CatalogFile)
		if err != nil {
			return domain.Catalog{}, nil, fmt.Errorf("read catalog file: %w", err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return domain.Catalog{}, nil, fmt.Errorf("parse catalog file: %w", err)
		}
		if len(file.Communities) > 0 {
			catalog = domain.Catalog{Communities: file.Communities}
		}
		if len(file.Celebrants) > 0 {
			celebrants = append([]string{domain.CelebrantUnset}, file.Celebrants...)
		}
	}

	if err := catalog.Validate(); err != nil {
		return domain.Catalog{}, nil, err
	}
	return catalog, celebrants, nil
}
