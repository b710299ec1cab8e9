package domain

import "time"

// Row is the persisted form of one record in the backing table. Slot rows
// use Celebrant/Note, annotation rows use CustomTitle; all fields are plain
// text and already normalized (no textual null sentinels survive the store
// adapter).
type Row struct {
	Key         string `json:"key"`
	Celebrant   string `json:"celebrant"`
	Note        string `json:"note"`
	CustomTitle string `json:"customTitle"`
}

// Assignment is the mutable state of one mass slot.
type Assignment struct {
	Celebrant string `json:"celebrant"`
	Note      string `json:"note"`
}

// SlotView is one resolved slot row as presented by every surface.
// Celebrant is empty when Placeholder is true; the paginated report renders
// CelebrantPlaceholder in that case, the workbook leaves the cell blank.
type SlotView struct {
	Date        time.Time
	Community   string
	Time        string
	Key         string
	Celebrant   string
	Placeholder bool
	Note        string
}

// SundayView groups the resolved slots of one Sunday, in catalog order,
// together with the resolved liturgical title (override > extracted > empty).
type SundayView struct {
	Date  time.Time
	Title string
	Slots []SlotView
}

// MonthView is the resolved roster of one month.
type MonthView struct {
	Year    int
	Month   time.Month
	Sundays []SundayView
}

// YearView is the resolved roster of the whole year, plus the celebrant
// roster the workbook export binds its advisory dropdowns to.
type YearView struct {
	Year       int
	Months     []MonthView
	Celebrants []string
}
