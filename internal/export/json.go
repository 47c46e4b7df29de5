package export

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

const mimeJSON = "application/json"

// jsonDocument is the machine-readable export. Summary totals stay unrounded
// except for the percentage, which is rounded to one decimal.
type jsonDocument struct {
	ExportDate   string               `json:"export_date"`
	Program      string               `json:"program"`
	Summary      jsonSummary          `json:"summary"`
	AreaProgress []model.AreaProgress `json:"area_progress"`
	Modules      []model.PlanLine     `json:"modules"`
}

type jsonSummary struct {
	TotalECTS       float64 `json:"total_ects"`
	PlannedECTS     float64 `json:"planned_ects"`
	CompletedECTS   float64 `json:"completed_ects"`
	ProgressPercent float64 `json:"progress_percent"`
}

func renderJSON(plan model.Plan, rules *program.Rules, now time.Time) (Document, error) {
	progress := plan.TotalPlanned / rules.TotalECTS * 100

	doc := jsonDocument{
		ExportDate: now.Format(exportTimeLayout),
		Program:    rules.ProgramName,
		Summary: jsonSummary{
			TotalECTS:       rules.TotalECTS,
			PlannedECTS:     plan.TotalPlanned,
			CompletedECTS:   plan.TotalCompleted,
			ProgressPercent: math.Round(progress*10) / 10,
		},
		AreaProgress: plan.AreaProgress,
		Modules:      plan.Modules(),
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Document{}, fmt.Errorf("encode export document: %w", err)
	}

	return Document{
		Content:     content,
		ContentType: mimeJSON,
		Filename:    filename(now, "json"),
	}, nil
}
