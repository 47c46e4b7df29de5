package planner

import (
	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// Localized status labels used verbatim in the export documents.
const (
	StatusPlanned   = "Geplant"
	StatusCompleted = "Abgeschlossen"
)

// Aggregate resolves client selections against the normalized catalog and
// groups them into a renderable plan. Selections referencing unknown courses
// are skipped, credits follow the client value when it is set and non-zero,
// and every program area appears in the progress list even when it holds no
// lines. Totals accumulate in submission order.
func Aggregate(courses []model.Course, selections []model.Selection, rules *program.Rules) model.Plan {
	index := buildIndex(courses)

	plan := model.Plan{LinesByArea: make(map[string][]model.PlanLine)}

	for _, sel := range selections {
		course, ok := resolve(index, courses, sel.Ref())
		if !ok {
			continue
		}

		ects := selectionCredits(sel, course)
		completed := sel.Status == model.SelectionStatusCompleted

		status := StatusPlanned
		if completed {
			status = StatusCompleted
		}

		area := course.AreaName
		if area == "" {
			area = program.UnassignedAreaName
		}

		plan.LinesByArea[area] = append(plan.LinesByArea[area], model.PlanLine{
			Code:      course.Code,
			Title:     course.Title,
			ECTS:      ects,
			Professor: course.Professor,
			Status:    status,
			Area:      area,
		})

		plan.TotalPlanned += ects
		if completed {
			plan.TotalCompleted += ects
		}
	}

	for _, area := range rules.Areas {
		planned := plan.AreaECTS(area.Name)
		plan.AreaProgress = append(plan.AreaProgress, model.AreaProgress{
			Name:      area.Name,
			Planned:   planned,
			Required:  area.MinECTS,
			Fulfilled: planned >= area.MinECTS,
		})
	}

	return plan
}

// buildIndex keys every course by its id and by the slug of its code, in
// catalog order. Clients reference courses either way; on key collisions the
// later course wins.
func buildIndex(courses []model.Course) map[string]model.Course {
	index := make(map[string]model.Course, len(courses)*2)
	for _, c := range courses {
		index[c.ID] = c
		if c.Code != "" {
			index[model.Slug(c.Code)] = c
		}
	}
	return index
}

// resolve looks the reference up in the index and falls back to a linear
// id scan in catalog order for references that miss every key.
func resolve(index map[string]model.Course, courses []model.Course, ref string) (model.Course, bool) {
	if course, ok := index[ref]; ok {
		return course, true
	}
	for _, c := range courses {
		if c.ID == ref {
			return c, true
		}
	}
	return model.Course{}, false
}

// selectionCredits picks the credits for one line. The client value wins
// over the catalog value, but a zero is treated like an unset value and
// falls through the chain.
func selectionCredits(sel model.Selection, course model.Course) float64 {
	if sel.ECTS != nil && *sel.ECTS != 0 {
		return *sel.ECTS
	}
	if sel.ECTSOverride != nil && *sel.ECTSOverride != 0 {
		return *sel.ECTSOverride
	}
	return course.ECTS
}
