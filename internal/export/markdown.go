package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

const mimeMarkdown = "text/markdown"

// renderMarkdown produces the German study-plan document: a summary with the
// per-area progress table, then one table of modules per area. Credits are
// rendered without decimals throughout.
func renderMarkdown(plan model.Plan, rules *program.Rules, now time.Time) Document {
	lines := []string{
		"# Studienplan " + rules.ProgramName,
		"",
		fmt.Sprintf("*Exportiert am %s*", now.Format(exportTimeLayout)),
		"",
		"---",
		"",
		"## Zusammenfassung",
		"",
		fmt.Sprintf("- **ECTS geplant:** %.0f / %.0f", plan.TotalPlanned, rules.TotalECTS),
		fmt.Sprintf("- **ECTS abgeschlossen:** %.0f", plan.TotalCompleted),
		fmt.Sprintf("- **Fortschritt:** %.0f%%", plan.TotalPlanned/rules.TotalECTS*100),
		"",
		"### Bereichs-Fortschritt",
		"",
		"| Bereich | Geplant | Erforderlich | Status |",
		"|---------|---------|--------------|--------|",
	}

	for _, ap := range plan.AreaProgress {
		status := "Offen"
		if ap.Fulfilled {
			status = "Erfüllt"
		}
		lines = append(lines, fmt.Sprintf("| %s | %.0f ECTS | %.0f ECTS | %s |", ap.Name, ap.Planned, ap.Required, status))
	}

	lines = append(lines, "", "---", "", "## Geplante Module", "")

	for _, area := range plan.AreaNames() {
		lines = append(lines,
			fmt.Sprintf("### %s (%.0f ECTS)", area, plan.AreaECTS(area)),
			"",
			"| Code | Titel | ECTS | Dozent | Status |",
			"|------|-------|------|--------|--------|",
		)
		for _, l := range plan.Lines(area) {
			lines = append(lines, fmt.Sprintf("| %s | %s | %.0f | %s | %s |", l.Code, l.Title, l.ECTS, l.Professor, l.Status))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*Generiert mit dem Mannheim DS Planner*",
	)

	return Document{
		Content:     []byte(strings.Join(lines, "\n")),
		ContentType: mimeMarkdown,
		Filename:    filename(now, "md"),
	}
}
