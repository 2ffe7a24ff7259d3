package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-backend/internal/application/dto"
	"github.com/jhoicas/storefront-backend/internal/application/inventory"
	"github.com/jhoicas/storefront-backend/internal/domain"
	"github.com/jhoicas/storefront-backend/internal/domain/entity"
)

// InventoryHandler maneja el seeder y la consulta de niveles (protegido).
type InventoryHandler struct {
	seeder *inventory.SeedInventoryUseCase
	levels *inventory.InventoryLevelUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(seeder *inventory.SeedInventoryUseCase, levels *inventory.InventoryLevelUseCase) *InventoryHandler {
	return &InventoryHandler{seeder: seeder, levels: levels}
}

// Seed godoc
// @Summary      Ejecutar update-inventory
// @Description  Crea la bodega por defecto si no hay ninguna y asegura un nivel para cada item.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SeedInventoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/inventory/seed [post]
func (h *InventoryHandler) Seed(c *fiber.Ctx) error {
	res, err := h.seeder.Execute(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "otro proceso creó niveles al mismo tiempo, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SeedInventoryResponse{
		LocationID:         res.LocationID,
		LocationName:       res.LocationName,
		LocationCreated:    res.LocationCreated,
		SalesChannelLinked: res.SalesChannelLinked,
		ItemCount:          res.ItemCount,
		ExistingLevels:     res.ExistingLevels,
		CreatedLevels:      res.CreatedLevels,
		UpdatedLevels:      res.UpdatedLevels,
	})
}

// ListLevels godoc
// @Summary      Niveles de inventario por ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.InventoryLevelListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/inventory-levels [get]
func (h *InventoryHandler) ListLevels(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id es requerido"})
	}
	list, err := h.levels.ListByLocation(c.UserContext(), locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.InventoryLevelResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toInventoryLevelResponse(l))
	}
	return c.JSON(dto.InventoryLevelListResponse{LocationID: locationID, Items: items, Total: len(items)})
}

func toInventoryLevelResponse(l *entity.InventoryLevel) dto.InventoryLevelResponse {
	return dto.InventoryLevelResponse{
		ID:               l.ID,
		InventoryItemID:  l.InventoryItemID,
		LocationID:       l.LocationID,
		StockedQuantity:  l.StockedQuantity,
		ReservedQuantity: l.ReservedQuantity,
		UpdatedAt:        l.UpdatedAt,
	}
}
