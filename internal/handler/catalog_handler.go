package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/response"
	"github.com/alexanderciuffreda/mannheim-planner/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog godoc
// GET /api/catalog
//
// The catalog response is everything a client needs to run the planner:
// selectable courses, the program rules, and the area color table.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	courses := h.catalogService.Courses(c.Request.Context())
	if courses == nil {
		courses = []model.Course{}
	}

	rules := h.catalogService.Rules()
	response.Success(c, http.StatusOK, gin.H{
		"courses":     courses,
		"rules":       rules,
		"area_colors": rules.AreaColors,
	})
}
