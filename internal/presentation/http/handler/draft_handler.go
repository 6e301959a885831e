package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/application/service"
	"github.com/billfold/billfold-api/internal/presentation/http/dto/request"
	"github.com/billfold/billfold-api/internal/presentation/http/dto/response"
)

// DraftHandler handles draft (in-progress invoice) HTTP requests
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Create opens a new draft with a single blank line
func (h *DraftHandler) Create(c *gin.Context) {
	draft, err := h.draftService.CreateDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Draft created successfully", draft)
}

// Get returns a draft by id
func (h *DraftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.draftService.GetDraft(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft retrieved successfully", draft)
}

// Update merges header changes (customer, payment, charges, notes)
func (h *DraftHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var input service.UpdateDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.UpdateDraft(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft updated successfully", draft)
}

// Delete discards a draft
func (h *DraftHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	if err := h.draftService.DeleteDraft(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddItem appends a blank line to the draft
func (h *DraftHandler) AddItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.draftService.AddItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added successfully", draft)
}

// AddCatalogItem appends a line pre-filled from a catalog product
func (h *DraftHandler) AddCatalogItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req request.AddCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.AddItemFromCatalog(c.Request.Context(), id, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added successfully", draft)
}

// UpdateItem merges partial changes into one line
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	id, itemID, ok := h.itemIDs(c)
	if !ok {
		return
	}

	var input service.UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.UpdateItem(c.Request.Context(), id, itemID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", draft)
}

// RemoveItem removes one line from the draft
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	id, itemID, ok := h.itemIDs(c)
	if !ok {
		return
	}

	draft, err := h.draftService.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", draft)
}

// SelectProduct fills an existing line from a catalog product
func (h *DraftHandler) SelectProduct(c *gin.Context) {
	id, itemID, ok := h.itemIDs(c)
	if !ok {
		return
	}

	var req request.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.SelectProduct(c.Request.Context(), id, itemID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product selected successfully", draft)
}

// Totals returns the recomputed totals for a draft
func (h *DraftHandler) Totals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	totals, err := h.draftService.Totals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed successfully", totals)
}

func (h *DraftHandler) itemIDs(c *gin.Context) (uuid.UUID, int64, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return uuid.Nil, 0, false
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return uuid.Nil, 0, false
	}

	return id, itemID, true
}
