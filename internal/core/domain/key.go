package domain

import (
	"fmt"
	"strings"
	"time"
)

// KeyDateLayout is the date format shared by slot and annotation keys.
const KeyDateLayout = "02/01/2006"

// annotationKeyPrefix distinguishes per-Sunday annotation rows from slot rows
// in the shared table. Slot keys always start with a digit, so the prefix can
// never collide.
const annotationKeyPrefix = "titulo_"

// SlotKey builds the unique key of one mass slot:
// "dd/mm/yyyy_<community>_<HH:MM>". Community names must not contain '_'
// (enforced by Catalog.Validate), which keeps the scheme injective.
func SlotKey(date time.Time, community, timeOfDay string) string {
	return fmt.Sprintf("%s_%s_%s", date.Format(KeyDateLayout), community, timeOfDay)
}

// AnnotationKey builds the key of the per-Sunday title override row.
func AnnotationKey(date time.Time) string {
	return annotationKeyPrefix + date.Format(KeyDateLayout)
}

// IsAnnotationKey reports whether a stored key addresses a DateAnnotation row.
func IsAnnotationKey(key string) bool {
	return strings.HasPrefix(key, annotationKeyPrefix)
}

// ParseSlotKey splits a slot key back into its (date, community, time) parts.
func ParseSlotKey(key string) (time.Time, string, string, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 3 {
		return time.Time{}, "", "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	date, err := time.ParseInLocation(KeyDateLayout, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}
	return date, parts[1], parts[2], nil
}

// ParseAnnotationKey extracts the date from an annotation key.
func ParseAnnotationKey(key string) (time.Time, error) {
	if !IsAnnotationKey(key) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	date, err := time.ParseInLocation(KeyDateLayout, strings.TrimPrefix(key, annotationKeyPrefix), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}
	return date, nil
}
