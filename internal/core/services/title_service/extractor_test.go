package title_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastoraldigital/mass-schedule-manager/internal/core/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func extract(t *testing.T, pages [][]string) (map[time.Time]string, domain.ExtractionReport) {
	t.Helper()
	report := domain.ExtractionReport{}
	titles := ExtractTitles(2026, pages, &report)
	return titles, report
}

func TestExtractHeadingWithTrailingLines(t *testing.T) {
	titles, report := extract(t, [][]string{{
		"11 JANEIRO Batismo do Senhor",
		"Festa",
		"Solenidade local",
	}})

	require.Len(t, titles, 1)
	assert.Equal(t, "Batismo do Senhor Festa Solenidade local", titles[date(2026, time.January, 11)])
	assert.Equal(t, 1, report.Headings)
}

func TestExtractHeadingVariants(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  time.Time
		title string
	}{
		{"plain", "11 JANEIRO Batismo do Senhor", date(2026, time.January, 11), "Batismo do Senhor"},
		{"lowercase with filler", "25 de dezembro Natal do Senhor", date(2026, time.December, 25), "Natal do Senhor"},
		{"dash filler", "1-MARÇO 2º Domingo da Quaresma", date(2026, time.March, 1), "2º Domingo da Quaresma"},
		{"slash filler", "19 / Abril 2º Domingo da Páscoa", date(2026, time.April, 19), "2º Domingo da Páscoa"},
		{"no cedilla", "8 Marco Anúncio", date(2026, time.March, 8), "Anúncio"},
		{"embedded in line", "Domingo, 17 de Maio Ascensão do Senhor", date(2026, time.May, 17), "Domingo, Ascensão do Senhor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles, _ := extract(t, [][]string{{tt.line}})
			require.Contains(t, titles, tt.want, "line %q", tt.line)
			assert.Equal(t, tt.title, titles[tt.want])
		})
	}
}

func TestExtractRejectsImpossibleDates(t *testing.T) {
	titles, report := extract(t, [][]string{{
		"30 FEVEREIRO Festa X",
		"essa linha continua sem dono",
	}})

	assert.Empty(t, titles)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 0, report.Headings)
}

func TestExtractInvalidHeadingKeepsPreviousDateOpen(t *testing.T) {
	titles, report := extract(t, [][]string{{
		"11 JANEIRO Batismo do Senhor",
		"30 FEVEREIRO Festa X",
		"continuação do título",
	}})

	require.Len(t, titles, 1)
	// The bogus heading is dropped, the trailing line still belongs to Jan 11.
	assert.Equal(t, "Batismo do Senhor continuação do título", titles[date(2026, time.January, 11)])
	assert.Equal(t, 1, report.Rejected)
}

func TestExtractBoundsBufferedLines(t *testing.T) {
	page := []string{"11 JANEIRO Batismo do Senhor"}
	for i := 0; i < 10; i++ {
		page = append(page, "rodapé")
	}
	titles, _ := extract(t, [][]string{page})

	title := titles[date(2026, time.January, 11)]
	// Seed line plus at most maxBufferedLines-1 more.
	assert.Equal(t, "Batismo do Senhor rodapé rodapé rodapé rodapé", title)
}

func TestExtractClosesOnNextHeadingAndAcrossPages(t *testing.T) {
	titles, report := extract(t, [][]string{
		{
			"11 JANEIRO Batismo do Senhor",
			"18 JANEIRO 2º Domingo do Tempo Comum",
		},
		{
			"25 JANEIRO 3º Domingo do Tempo Comum",
			"Domingo da Palavra de Deus",
		},
	})

	require.Len(t, titles, 3)
	assert.Equal(t, "Batismo do Senhor", titles[date(2026, time.January, 11)])
	assert.Equal(t, "2º Domingo do Tempo Comum", titles[date(2026, time.January, 18)])
	assert.Equal(t, "3º Domingo do Tempo Comum Domingo da Palavra de Deus", titles[date(2026, time.January, 25)])
	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, 3, report.Headings)
}

func TestExtractIgnoresBlankAndUnanchoredLines(t *testing.T) {
	titles, _ := extract(t, [][]string{{
		"calendário litúrgico",
		"",
		"sem data nenhuma aqui",
	}})
	assert.Empty(t, titles)
}
