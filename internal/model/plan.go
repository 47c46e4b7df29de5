package model

import "sort"

// PlanLine is one module of an aggregated study plan. Status carries the
// localized label that appears verbatim in the export documents.
type PlanLine struct {
	Code      string  `json:"code"`
	Title     string  `json:"title"`
	ECTS      float64 `json:"ects"`
	Professor string  `json:"professor"`
	Status    string  `json:"status"`
	Area      string  `json:"area"`
}

// AreaProgress reports how far a plan gets within one program area.
type AreaProgress struct {
	Name      string  `json:"name"`
	Planned   float64 `json:"planned"`
	Required  float64 `json:"required"`
	Fulfilled bool    `json:"fulfilled"`
}

// Plan is a fully aggregated study plan ready for rendering. Lines are
// grouped by area display name; AreaProgress holds one entry per program
// area in rule-set order, including areas without lines. Totals accumulate
// in the order selections were submitted.
type Plan struct {
	LinesByArea    map[string][]PlanLine
	AreaProgress   []AreaProgress
	TotalPlanned   float64
	TotalCompleted float64
}

// AreaNames returns the areas that hold at least one line, in the
// lexicographic order shared by every export format.
func (p *Plan) AreaNames() []string {
	names := make([]string, 0, len(p.LinesByArea))
	for name := range p.LinesByArea {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lines returns the lines of one area ordered by course code. Lines with
// equal codes keep their submission order.
func (p *Plan) Lines(area string) []PlanLine {
	lines := make([]PlanLine, len(p.LinesByArea[area]))
	copy(lines, p.LinesByArea[area])
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Code < lines[j].Code
	})
	return lines
}

// AreaECTS sums the credits of one area's lines.
func (p *Plan) AreaECTS(area string) float64 {
	var sum float64
	for _, line := range p.LinesByArea[area] {
		sum += line.ECTS
	}
	return sum
}

// Modules returns every line of the plan in the common export order:
// area name first, course code second.
func (p *Plan) Modules() []PlanLine {
	modules := make([]PlanLine, 0)
	for _, area := range p.AreaNames() {
		modules = append(modules, p.Lines(area)...)
	}
	return modules
}
