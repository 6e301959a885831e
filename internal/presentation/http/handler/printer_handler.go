package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/billfold/billfold-api/internal/application/service"
	"github.com/billfold/billfold-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns printer configuration and connectivity
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// PrintReceipt prints a stored invoice on the thermal printer
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	if err := h.printerService.PrintInvoice(c.Request.Context(), c.Param("number")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
