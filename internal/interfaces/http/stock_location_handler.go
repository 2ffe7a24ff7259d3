package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-backend/internal/application/dto"
	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// StockLocationHandler listado de ubicaciones (store y admin).
type StockLocationHandler struct {
	uc *inventory.StockLocationUseCase
}

// NewStockLocationHandler construye el handler.
func NewStockLocationHandler(uc *inventory.StockLocationUseCase) *StockLocationHandler {
	return &StockLocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones de stock
// @Tags         stock-locations
// @Produce      json
// @Success      200  {object}  dto.StockLocationListResponse
// @Router       /admin/stock-locations [get]
// @Router       /store/stock-locations [get]
func (h *StockLocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.StockLocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toStockLocationResponse(l))
	}
	return c.JSON(dto.StockLocationListResponse{Items: items, Total: len(items)})
}

func toStockLocationResponse(l *entity.StockLocation) dto.StockLocationResponse {
	return dto.StockLocationResponse{
		ID:   l.ID,
		Name: l.Name,
		Address: dto.StockLocationAddressResponse{
			Address1:    l.Address.Address1,
			City:        l.Address.City,
			CountryCode: l.Address.CountryCode,
		},
		CreatedAt: l.CreatedAt,
	}
}
