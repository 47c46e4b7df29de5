package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// RestrictionKindExplicit removes a course from the served catalog. Any other
// kind is advisory and only annotates the course.
const RestrictionKindExplicit = "explicit"

// RawCourse is one catalog entry as found in the data files. Two schema
// generations circulate: scraped files carry module_code/module_name and
// structured area tags, enriched files carry code/title and plain labels.
// Both are accepted everywhere; normalization resolves them into a Course.
type RawCourse struct {
	ID            string      `json:"id"`
	Code          string      `json:"code"`
	ModuleCode    string      `json:"module_code"`
	Title         string      `json:"title"`
	ModuleName    string      `json:"module_name"`
	ECTS          CreditValue `json:"ects"`
	Professor     string      `json:"professor"`
	Chair         string      `json:"chair"`
	Semester      string      `json:"semester"`
	AreaID        string      `json:"area_id"`
	AssignedAreas []AreaTag   `json:"assigned_areas"`
	Source        string      `json:"source"`
	Metrics       *RawMetrics `json:"metrics"`
}

// CreditValue is a credit field that may arrive as a JSON number or as free
// text such as "max. 18 ECTS". Unknown shapes decode to the unset value so a
// single odd record cannot take the whole file down.
type CreditValue struct {
	Number float64
	Text   string
	IsText bool
	Set    bool
}

func (v *CreditValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = CreditValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = CreditValue{}
			return nil
		}
		*v = CreditValue{Text: s, IsText: true, Set: true}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*v = CreditValue{}
		return nil
	}
	*v = CreditValue{Number: n, Set: true}
	return nil
}

// Float resolves the credit value to a number. Text is parsed leniently;
// anything unparseable or unset counts as zero.
func (v CreditValue) Float() float64 {
	if !v.Set {
		return 0
	}
	if v.IsText {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return v.Number
}

// AreaTag is one entry of assigned_areas. Scraped files emit objects with the
// regulation version attached, newer files emit bare label strings. The
// Structured flag records which shape was read; nothing downstream of the
// normalizer inspects it.
type AreaTag struct {
	Label      string
	POVersion  string
	Structured bool
}

func (t *AreaTag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Area      string `json:"area"`
			POVersion string `json:"po_version"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			*t = AreaTag{Structured: true}
			return nil
		}
		*t = AreaTag{Label: obj.Area, POVersion: obj.POVersion, Structured: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = AreaTag{}
		return nil
	}
	*t = AreaTag{Label: s}
	return nil
}

// RawMetrics is the research metrics block of the enriched catalog files.
type RawMetrics struct {
	HIndex            int    `json:"h_index"`
	Citations         int    `json:"citations"`
	TopPaperTitle     string `json:"top_paper_title"`
	TopPaperCitations int    `json:"top_paper_citations"`
	TopPaperYear      *int   `json:"top_paper_year"`
	TopPaperVenue     string `json:"top_paper_venue"`
}

// RestrictionEntry marks a course that must not be offered for selection.
type RestrictionEntry struct {
	Code   string `json:"code"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// Course is the normalized catalog entry served to clients. Instances are
// built fresh per request and never mutated afterwards.
type Course struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Title              string    `json:"title"`
	ECTS               float64   `json:"ects"`
	Professor          string    `json:"professor"`
	Chair              string    `json:"chair"`
	Semester           string    `json:"semester"`
	AreaID             string    `json:"area_id"`
	AreaName           string    `json:"area_name"`
	Source             string    `json:"source"`
	IsAdditionalCourse bool      `json:"is_additional_course"`
	MaxECTS            *float64  `json:"max_ects"`
	Restricted         bool      `json:"restricted"`
	RestrictedKind     string    `json:"restricted_kind"`
	RestrictedReason   string    `json:"restricted_reason"`
	HIndex             int       `json:"h_index"`
	Citations          int       `json:"citations"`
	TopPaper           *TopPaper `json:"top_paper"`
}

// TopPaper is the most cited publication of the course's professor.
type TopPaper struct {
	Title     string `json:"title"`
	Citations int    `json:"citations"`
	Year      *int   `json:"year"`
	Venue     string `json:"venue"`
}

// Slug lowercases a code or id fragment and replaces spaces with dashes.
// Catalog ids are minted this way, and plan selections may reference courses
// by the slug of their code.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
