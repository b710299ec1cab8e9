package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKeyFormat(t *testing.T) {
	date := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "04/01/2026_Santa Monica_07:00", SlotKey(date, "Santa Monica", "07:00"))
}

func TestSlotKeyUniqueAcrossCatalogAndYear(t *testing.T) {
	catalog := DefaultCatalog()
	seen := make(map[string]bool)

	for _, sunday := range Sundays(2026) {
		for _, community := range catalog.Communities {
			for _, timeOfDay := range community.Times {
				key := SlotKey(sunday, community.Name, timeOfDay)
				require.False(t, seen[key], "duplicate key %q", key)
				seen[key] = true
			}
		}
	}

	assert.Equal(t, len(Sundays(2026))*catalog.SlotsPerSunday(), len(seen))
}

func TestParseSlotKeyRoundTrip(t *testing.T) {
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	key := SlotKey(date, "São Miguel", "08:45")

	parsedDate, community, timeOfDay, err := ParseSlotKey(key)
	require.NoError(t, err)
	assert.Equal(t, date, parsedDate)
	assert.Equal(t, "São Miguel", community)
	assert.Equal(t, "08:45", timeOfDay)
}

func TestParseSlotKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "abc", "04/01/2026_Santa Monica", "notadate_X_07:00", "a_b_c_d"} {
		_, _, _, err := ParseSlotKey(key)
		assert.ErrorIs(t, err, ErrMalformedKey, "key %q", key)
	}
}

func TestAnnotationKeysNeverCollideWithSlotKeys(t *testing.T) {
	date := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)

	annotationKey := AnnotationKey(date)
	assert.Equal(t, "titulo_04/01/2026", annotationKey)
	assert.True(t, IsAnnotationKey(annotationKey))

	// Slot keys start with the day digits, so the prefix cannot overlap.
	for _, community := range DefaultCatalog().Communities {
		for _, timeOfDay := range community.Times {
			assert.False(t, IsAnnotationKey(SlotKey(date, community.Name, timeOfDay)))
		}
	}

	parsed, err := ParseAnnotationKey(annotationKey)
	require.NoError(t, err)
	assert.Equal(t, date, parsed)
}
