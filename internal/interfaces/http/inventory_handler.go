package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/application/usecase"
)

// InventoryHandler stock e historial de movimientos (protegido).
type InventoryHandler struct {
	stock *usecase.StockUseCase
	moves *usecase.MoveHistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *usecase.StockUseCase, moves *usecase.MoveHistoryUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, moves: moves}
}

// ListStock godoc
// @Summary      Stock por producto y bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  int  false  "Filtrar por bodega"
// @Success      200  {array}   dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	warehouseID, err := optionalInt64Query(c, "warehouse_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.stock.List(c.Context(), warehouseID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Ajustar on_hand / free_to_use
// @Description  Al menos uno de los dos campos; los omitidos no cambian.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la fila de stock"
// @Param        body  body  dto.UpdateStockRequest  true  "on_hand y/o free_to_use"
// @Success      200   {object}  dto.StockRowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.stock.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMoveHistory godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MoveHistoryResponse
// @Router       /api/move-history [get]
func (h *InventoryHandler) ListMoveHistory(c *fiber.Ctx) error {
	out, err := h.moves.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
