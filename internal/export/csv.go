package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

const mimeCSV = "text/csv"

// renderCSV produces the semicolon-separated table import format: one row
// per module ordered by area then code, a blank record, and a summary block.
// Records end in CRLF for spreadsheet compatibility.
func renderCSV(plan model.Plan, rules *program.Rules, now time.Time) Document {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = true

	w.Write([]string{"Bereich", "Code", "Titel", "ECTS", "Dozent", "Status"})
	for _, area := range plan.AreaNames() {
		for _, l := range plan.Lines(area) {
			w.Write([]string{
				l.Area,
				l.Code,
				l.Title,
				fmt.Sprintf("%.0f", l.ECTS),
				l.Professor,
				l.Status,
			})
		}
	}
	w.Write([]string{})
	w.Write([]string{"# Zusammenfassung"})
	w.Write([]string{"ECTS geplant", fmt.Sprintf("%.0f", plan.TotalPlanned)})
	w.Write([]string{"ECTS abgeschlossen", fmt.Sprintf("%.0f", plan.TotalCompleted)})
	w.Flush()

	return Document{
		Content:     buf.Bytes(),
		ContentType: mimeCSV,
		Filename:    filename(now, "csv"),
	}
}
