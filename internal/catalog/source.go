package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
)

// File names the operator drops into the data directory. The full file is
// preferred because it carries professor and metrics enrichment; the parsed
// file is the plain scraper output.
const (
	fullCatalogFile   = "courses_full.json"
	parsedCatalogFile = "courses_parsed.json"
	restrictionsFile  = "restricted_courses.json"
)

// Source reads catalog data from a directory of JSON files. Files are read
// on every call so operators can swap data without a restart; a missing or
// broken file degrades to an empty result and never fails a request.
type Source struct {
	dataDir string
	log     zerolog.Logger
}

// NewSource creates a Source over dataDir. The directory may be absent at
// startup; the catalog is simply empty until files appear.
func NewSource(dataDir string, log zerolog.Logger) *Source {
	s := &Source{
		dataDir: dataDir,
		log:     log.With().Str("component", "catalog_source").Logger(),
	}
	if _, err := os.Stat(dataDir); err != nil {
		s.log.Warn().Err(err).Str("dir", dataDir).Msg("Data directory not accessible, catalog starts empty")
	} else {
		s.log.Info().Str("dir", dataDir).Msg("Catalog source ready")
	}
	return s
}

// courseFile matches {"courses": [...]}. The pointer distinguishes a file
// without the courses key (unusable, try the next file) from one whose list
// is legitimately empty.
type courseFile struct {
	Courses *[]model.RawCourse `json:"courses"`
}

type restrictionFile struct {
	Restricted []model.RestrictionEntry `json:"restricted"`
}

// RawCourses returns the raw catalog, trying courses_full.json before
// courses_parsed.json. A file counts only when it decodes to an object
// holding a courses list.
func (s *Source) RawCourses(ctx context.Context) []model.RawCourse {
	for _, name := range []string{fullCatalogFile, parsedCatalogFile} {
		var doc courseFile
		if !s.readJSON(name, &doc) {
			continue
		}
		if doc.Courses == nil {
			s.log.Warn().Str("file", name).Msg("Catalog file has no courses list, trying next")
			continue
		}
		return *doc.Courses
	}
	return nil
}

// Restrictions returns the restriction list, empty when the file is absent.
func (s *Source) Restrictions(ctx context.Context) []model.RestrictionEntry {
	var doc restrictionFile
	if !s.readJSON(restrictionsFile, &doc) {
		return nil
	}
	return doc.Restricted
}

func (s *Source) readJSON(name string, dst interface{}) bool {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Str("file", name).Msg("Data file missing")
		} else {
			s.log.Warn().Err(err).Str("file", name).Msg("Data file unreadable")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("file", name).Msg("Data file malformed")
		return false
	}
	return true
}
