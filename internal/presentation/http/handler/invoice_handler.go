package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/billfold/billfold-api/internal/application/service"
	"github.com/billfold/billfold-api/internal/presentation/http/dto/response"
	"github.com/billfold/billfold-api/pkg/export"
	"github.com/billfold/billfold-api/pkg/pagination"
	"github.com/billfold/billfold-api/pkg/render"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Build freezes a draft into an immutable invoice
func (h *InvoiceHandler) Build(c *gin.Context) {
	var req struct {
		DraftID uuid.UUID `json:"draft_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.Build(c.Request.Context(), req.DraftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// List returns stored invoices, newest first, page-based
func (h *InvoiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(
		pagination.Slice(invoices, params),
		pagination.NewPagination(params.Page, params.PerPage, len(invoices)),
	)

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get returns one stored invoice by number
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Render returns the invoice as an HTML fragment in the requested
// template (?template=modern|classic|receipt, default modern)
func (h *InvoiceHandler) Render(c *gin.Context) {
	tpl, err := render.ParseTemplate(c.Query("template"))
	if err != nil {
		response.BadRequest(c, "Unknown template")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	html, err := render.Render(invoice, tpl)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", []byte(html))
}

// PrintDocument returns a standalone HTML document ready to be sent to
// the browser's print dialog
func (h *InvoiceHandler) PrintDocument(c *gin.Context) {
	tpl, err := render.ParseTemplate(c.Query("template"))
	if err != nil {
		response.BadRequest(c, "Unknown template")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := export.PrintDocument(invoice, tpl)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", []byte(doc))
}

// Export downloads the invoice as a pretty-printed JSON attachment
func (h *InvoiceHandler) Export(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := export.JSON(invoice)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.JSONFilename(invoice)))
	c.Data(200, "application/json", data)
}

// ExportRegister downloads all stored invoices as an xlsx workbook
func (h *InvoiceHandler) ExportRegister(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := export.Register(invoices)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.RegisterFilename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
