package dto

import (
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo del catálogo.
// UnitPrice acepta string decimal o número JSON (shopspring decodifica ambos).
type CreateItemRequest struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	StockQty  decimal.Decimal `json:"stock_qty"`
}

// UpdateItemRequest actualización parcial: solo los campos presentes cambian.
type UpdateItemRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Unit      *string          `json:"unit"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	StockQty  *decimal.Decimal `json:"stock_qty"`
}

// ListItemsRequest filtros y paginación del listado del catálogo.
type ListItemsRequest struct {
	Name            string `json:"name" query:"name"`
	Category        string `json:"category" query:"category"`
	IncludeInactive bool   `json:"include_inactive" query:"include_inactive"`
	PageRequest
}

// ItemResponse artículo en respuestas. Dinero como string decimal,
// cantidades como número, timestamps ISO-8601 UTC.
type ItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	UnitPrice string  `json:"unit_price"`
	StockQty  float64 `json:"stock_qty"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToItemResponse mapea la entidad al contrato externo. Ambos adaptadores
// pasan por aquí, así que el shape es idéntico en los dos.
func ToItemResponse(i *entity.Item) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Unit:      i.Unit,
		UnitPrice: Money(i.UnitPrice),
		StockQty:  Quantity(i.StockQty),
		IsActive:  i.IsActive,
		CreatedAt: Timestamp(i.CreatedAt),
		UpdatedAt: Timestamp(i.UpdatedAt),
	}
}
