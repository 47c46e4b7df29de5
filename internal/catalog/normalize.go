package catalog

import (
	"sort"
	"strings"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// BuildRestrictionIndex keys restriction entries by upper-cased course code.
// Entries without a code are dropped; a later entry for the same code wins.
func BuildRestrictionIndex(entries []model.RestrictionEntry) map[string]model.RestrictionEntry {
	index := make(map[string]model.RestrictionEntry, len(entries))
	for _, e := range entries {
		code := strings.ToUpper(e.Code)
		if code == "" {
			continue
		}
		index[code] = e
	}
	return index
}

// Normalize converts every raw record into its canonical form. No filtering
// happens here: restricted courses stay in and carry their restriction info,
// so the export path can still resolve plans that reference them.
func Normalize(raw []model.RawCourse, restrictions map[string]model.RestrictionEntry, rules *program.Rules) []model.Course {
	courses := make([]model.Course, 0, len(raw))
	for _, rc := range raw {
		courses = append(courses, NormalizeCourse(rc, restrictions, rules))
	}
	return courses
}

// NormalizeCourse resolves one raw record. Every field degrades to a safe
// default rather than failing: missing names become empty strings, missing
// or unparseable credits become zero, and an unresolvable area keeps the
// course under "Unassigned".
func NormalizeCourse(raw model.RawCourse, restrictions map[string]model.RestrictionEntry, rules *program.Rules) model.Course {
	code := raw.Code
	if code == "" {
		code = raw.ModuleCode
	}
	title := raw.Title
	if title == "" {
		title = raw.ModuleName
	}

	id := raw.ID
	if id == "" {
		id = model.Slug("course-" + code)
	}

	isAdditional := rules.IsAdditionalCourse(code)

	areaID := raw.AreaID
	if areaID == "" {
		areaID = resolveAreaID(raw.AssignedAreas)
	}

	source := raw.Source
	if source == "" {
		source = "catalog"
	}

	restriction := restrictions[strings.ToUpper(code)]

	var maxECTS *float64
	if isAdditional {
		capECTS := rules.AdditionalCourseMaxECTS
		maxECTS = &capECTS
	}

	var hIndex, citations int
	var topPaper *model.TopPaper
	if m := raw.Metrics; m != nil {
		hIndex = m.HIndex
		citations = m.Citations
		if m.TopPaperTitle != "" {
			topPaper = &model.TopPaper{
				Title:     m.TopPaperTitle,
				Citations: m.TopPaperCitations,
				Year:      m.TopPaperYear,
				Venue:     m.TopPaperVenue,
			}
		}
	}

	return model.Course{
		ID:                 id,
		Code:               code,
		Title:              title,
		ECTS:               resolveCredits(raw.ECTS, isAdditional, rules.AdditionalCourseMaxECTS),
		Professor:          raw.Professor,
		Chair:              raw.Chair,
		Semester:           raw.Semester,
		AreaID:             areaID,
		AreaName:           rules.AreaName(areaID),
		Source:             source,
		IsAdditionalCourse: isAdditional,
		MaxECTS:            maxECTS,
		Restricted:         restriction.Kind == model.RestrictionKindExplicit,
		RestrictedKind:     restriction.Kind,
		RestrictedReason:   restriction.Reason,
		HIndex:             hIndex,
		Citations:          citations,
		TopPaper:           topPaper,
	}
}

// resolveAreaID classifies the area tags of a record that has no explicit
// area id. The first tag's shape selects the strategy: structured tags are
// scanned for the current regulation version, plain labels use the first
// entry only.
func resolveAreaID(tags []model.AreaTag) string {
	if len(tags) == 0 {
		return ""
	}
	if tags[0].Structured {
		for _, t := range tags {
			if !strings.Contains(t.POVersion, "PO 2024") {
				continue
			}
			if id, ok := ClassifyArea(t.Label); ok {
				return id
			}
			// the first PO 2024 tag decides, even when its label does
			// not classify
			break
		}
		id, _ := ClassifyArea(tags[0].Label)
		return id
	}
	id, _ := ClassifyArea(tags[0].Label)
	return id
}

// resolveCredits turns the raw credit value into a number. Variable-credit
// modules are marked with a textual "max" value; the marker resolves to the
// Additional-Course cap for recognized AC codes and to zero for everything
// else.
func resolveCredits(v model.CreditValue, isAdditional bool, additionalMax float64) float64 {
	if v.IsText && strings.Contains(strings.ToLower(v.Text), "max") {
		if isAdditional {
			return additionalMax
		}
		return 0
	}
	return v.Float()
}

// FilterRestricted drops explicitly restricted courses. The catalog endpoint
// serves the filtered view; exports aggregate against the unfiltered one.
func FilterRestricted(courses []model.Course) []model.Course {
	kept := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.Restricted {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// SortByTitle orders courses case-insensitively by title, in place. Equal
// titles keep their catalog order.
func SortByTitle(courses []model.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		return strings.ToLower(courses[i].Title) < strings.ToLower(courses[j].Title)
	})
}
