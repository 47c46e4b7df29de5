package catalog

import (
	"strings"

	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// ClassifyArea maps a free-form area label onto a program area id. Labels
// come from several sources (scraper tags, hand-edited data, regulation
// texts) and agree on little beyond a few keyword fragments, so matching is
// done on a normalized form. Cues are tested in a fixed priority order and
// the first hit wins: "Seminar Responsible Data Science" carries both a
// responsible and a seminar cue and must resolve to responsible-data-science.
// ok is false when no cue matches.
func ClassifyArea(label string) (string, bool) {
	n := normalizeLabel(label)
	switch {
	case strings.Contains(n, "fundamental"):
		return program.AreaFundamentals, true
	case strings.Contains(n, "datamanagement"):
		return program.AreaDataManagement, true
	case strings.Contains(n, "dataanalyticsmethod"), strings.Contains(n, "dataanalyticmethod"):
		return program.AreaDataAnalytics, true
	case strings.Contains(n, "responsible"):
		return program.AreaResponsible, true
	case strings.Contains(n, "project"), strings.Contains(n, "seminar"):
		return program.AreaProjectsSeminars, true
	case strings.Contains(n, "thesis"):
		return program.AreaMasterThesis, true
	}
	return "", false
}

// normalizeLabel lowercases the label and strips everything outside [a-z0-9]
// so "Data Management", "data-management" and "Data  Management (C)" compare
// equal.
func normalizeLabel(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
