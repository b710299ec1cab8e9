package domain

import "time"

// ExtractionReport describes one run of the liturgical title extractor.
// Extraction is best effort: the report carries what happened instead of an
// error, so callers can surface diagnostics without having to handle one.
type ExtractionReport struct {
	Source    string    `json:"source"`
	Timing    int64     `json:"timing"`
	StartTime time.Time `json:"-"`
	Pages     int       `json:"pages"`
	Headings  int       `json:"headings"`
	Rejected  int       `json:"rejected"`
	Notes     []string  `json:"notes,omitempty"`
}

func (r *ExtractionReport) Start() {
	r.StartTime = time.Now()
}

func (r *ExtractionReport) Elapse() {
	r.Timing = time.Since(r.StartTime).Milliseconds()
}

func (r *ExtractionReport) AddNote(note string) {
	r.Notes = append(r.Notes, note)
}
