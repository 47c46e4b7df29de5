package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/catalog"
	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// CatalogService assembles the normalized course catalog. Everything is
// recomputed from the data source per call; the service holds no state
// beyond its dependencies.
type CatalogService struct {
	source *catalog.Source
	rules  *program.Rules
	log    zerolog.Logger
}

func NewCatalogService(source *catalog.Source, rules *program.Rules, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		source: source,
		rules:  rules,
		log:    log.With().Str("component", "catalog_service").Logger(),
	}
}

// Snapshot returns the full normalized catalog, restricted entries included.
// The export path aggregates against this view.
func (s *CatalogService) Snapshot(ctx context.Context) []model.Course {
	raw := s.source.RawCourses(ctx)
	restrictions := catalog.BuildRestrictionIndex(s.source.Restrictions(ctx))
	return catalog.Normalize(raw, restrictions, s.rules)
}

// Courses returns the catalog as served to clients: explicitly restricted
// courses removed, ordered by title.
func (s *CatalogService) Courses(ctx context.Context) []model.Course {
	courses := catalog.FilterRestricted(s.Snapshot(ctx))
	catalog.SortByTitle(courses)
	s.log.Debug().Int("courses", len(courses)).Msg("Catalog assembled")
	return courses
}

// Rules returns the program rule set the catalog is normalized against.
func (s *CatalogService) Rules() *program.Rules {
	return s.rules
}
