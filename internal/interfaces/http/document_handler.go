package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/application/inventory"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// DocumentHandler expone entregas o recepciones; kind decide cuál.
type DocumentHandler struct {
	uc   *inventory.DocumentUseCase
	kind entity.DocumentKind
}

// NewDeliveryHandler handler de /api/deliveries.
func NewDeliveryHandler(uc *inventory.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc, kind: entity.KindDelivery}
}

// NewReceiptHandler handler de /api/receipts.
func NewReceiptHandler(uc *inventory.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc, kind: entity.KindReceipt}
}

// List godoc
// @Summary      Listar entregas / recepciones
// @Description  Cabeceras, más recientes primero.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.DocumentResponse
// @Router       /api/deliveries [get]
// @Router       /api/receipts [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), h.kind)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener documento con sus líneas
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del documento"
// @Success      200  {object}  dto.DocumentDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [get]
// @Router       /api/receipts/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.Context(), h.kind, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear entrega / recepción
// @Description  Crea cabecera y líneas en una transacción y asigna la referencia {bodega}/{OUT|IN}/{id}.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Entrega (receipts usa dto.CreateReceiptRequest)"
// @Success      201   {object}  dto.CreateDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
// @Router       /api/receipts [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var (
		cmd inventory.CreateDocumentCommand
		err error
	)
	if h.kind == entity.KindReceipt {
		var in dto.CreateReceiptRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		cmd, err = inventory.ReceiptCommand(userID, in)
	} else {
		var in dto.CreateDeliveryRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		cmd, err = inventory.DeliveryCommand(userID, in)
	}
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transition godoc
// @Summary      Cambiar estado
// @Description  Draft -> Waiting -> Ready -> Done, o Cancelled desde cualquier estado no terminal. Done mueve stock.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del documento"
// @Param        body  body  dto.TransitionRequest  true  "status"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/status [post]
// @Router       /api/receipts/{id}/status [post]
func (h *DocumentHandler) Transition(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.TransitionFromRequest(c.Context(), h.kind, id, GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Comprobante PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del documento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/pdf [get]
// @Router       /api/receipts/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.uc.Slip(c.Context(), h.kind, id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
