package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())
	assert.Equal(t, 13, catalog.SlotsPerSunday())
	assert.Equal(t, "Santa Monica", catalog.Communities[0].Name, "catalog order must be preserved")
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "empty catalog",
			catalog: Catalog{},
			wantErr: "no communities",
		},
		{
			name: "separator in community name",
			catalog: Catalog{Communities: []Community{
				{Name: "Santa_Monica", Times: []string{"07:00"}},
			}},
			wantErr: "reserved key separator",
		},
		{
			name: "duplicate community",
			catalog: Catalog{Communities: []Community{
				{Name: "Santa Monica", Times: []string{"07:00"}},
				{Name: "Santa Monica", Times: []string{"09:00"}},
			}},
			wantErr: "duplicate community",
		},
		{
			name: "community without times",
			catalog: Catalog{Communities: []Community{
				{Name: "Santa Monica", Times: nil},
			}},
			wantErr: "no mass times",
		},
		{
			name: "malformed time",
			catalog: Catalog{Communities: []Community{
				{Name: "Santa Monica", Times: []string{"7h00"}},
			}},
			wantErr: "malformed mass time",
		},
		{
			name: "valid",
			catalog: Catalog{Communities: []Community{
				{Name: "Santa Monica", Times: []string{"07:00", "09:00"}},
				{Name: "São Francisco", Times: []string{"07:00"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultCelebrantsStartWithSentinel(t *testing.T) {
	celebrants := DefaultCelebrants()
	require.NotEmpty(t, celebrants)
	assert.Equal(t, CelebrantUnset, celebrants[0])
}
