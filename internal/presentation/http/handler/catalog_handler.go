package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/billfold/billfold-api/internal/application/service"
	"github.com/billfold/billfold-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	draftService *service.DraftService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(draftService *service.DraftService) *CatalogHandler {
	return &CatalogHandler{draftService: draftService}
}

// Search returns autocomplete suggestions for ?q=. An empty query
// returns the head of the catalog so the dropdown is never blank.
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.draftService.SearchCatalog(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}
