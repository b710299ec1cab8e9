package title_service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

// maxBufferedLines bounds how many lines after a date heading are absorbed
// into its title, so footers and page numbers do not leak in.
const maxBufferedLines = 5

// headingRe recognizes a date heading anywhere in a line: 1-2 digits, then
// optional filler ("de", "-", "/", "."), then a Portuguese month name.
// MARCO without the cedilla is accepted too; the source document is typed by
// hand.
var headingRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:DE\s+|[-/.]\s*)?(JANEIRO|FEVEREIRO|MARÇO|MARCO|ABRIL|MAIO|JUNHO|JULHO|AGOSTO|SETEMBRO|OUTUBRO|NOVEMBRO|DEZEMBRO)\b`)

var monthByName = map[string]time.Month{
	"JANEIRO": time.January, "FEVEREIRO": time.February,
	"MARÇO": time.March, "MARCO": time.March,
	"ABRIL": time.April, "MAIO": time.May, "JUNHO": time.June,
	"JULHO": time.July, "AGOSTO": time.August, "SETEMBRO": time.September,
	"OUTUBRO": time.October, "NOVEMBRO": time.November, "DEZEMBRO": time.December,
}

// ExtractTitles scans the document's lines, page by page, and builds the
// date -> liturgical title map for the given year. Headings open a date,
// following lines accumulate into its title (bounded), the next heading or
// the end of input closes it. Headings with an impossible day/month for the
// year are discarded silently: no date is opened and later lines keep
// flowing into the previously open one.
func ExtractTitles(year int, pages [][]string, report *domain.ExtractionReport) map[time.Time]string {
	titles := make(map[time.Time]string)
	report.Pages = len(pages)

	var openDate time.Time
	var buffer []string
	open := false

	closeOpen := func() {
		if !open {
			return
		}
		if title := strings.TrimSpace(strings.Join(buffer, " ")); title != "" {
			titles[openDate] = title
		}
		open = false
		buffer = nil
	}

	for _, page := range pages {
		for _, rawLine := range page {
			line := strings.TrimSpace(rawLine)
			if line == "" {
				continue
			}

			loc := headingRe.FindStringSubmatchIndex(line)
			if loc == nil {
				if open && len(buffer) < maxBufferedLines {
					buffer = append(buffer, line)
				}
				continue
			}

			day, _ := strconv.Atoi(line[loc[2]:loc[3]])
			month := monthByName[strings.ToUpper(line[loc[4]:loc[5]])]
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if date.Day() != day || date.Month() != month {
				// e.g. "30 FEVEREIRO": not a real date, keep the previous
				// date open and drop the heading line.
				report.Rejected++
				continue
			}

			closeOpen()
			report.Headings++
			openDate = date
			open = true
			if seed := stripHeading(line, loc[0], loc[1]); seed != "" {
				buffer = append(buffer, seed)
			}
		}
	}
	closeOpen()

	return titles
}

var spaceRe = regexp.MustCompile(`\s+`)

// stripHeading removes the matched date substring from a heading line,
// trims any leading punctuation left behind and collapses the whitespace
// the removal may have doubled.
func stripHeading(line string, start, end int) string {
	rest := line[:start] + line[end:]
	rest = strings.TrimLeftFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.TrimSpace(spaceRe.ReplaceAllString(rest, " "))
}
