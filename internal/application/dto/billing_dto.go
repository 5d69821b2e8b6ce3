package dto

import (
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateBillRequest body para POST /bills y billing_create_bill.
// CustomerName y StoreName son etiquetas opcionales de la venta.
type CreateBillRequest struct {
	CustomerName string            `json:"customer_name"`
	StoreName    string            `json:"store_name"`
	Lines        []BillLineRequest `json:"lines"`
}

// BillLineRequest línea solicitada: artículo y cantidad estrictamente positiva.
type BillLineRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ListBillsRequest filtros del ledger. Fechas "YYYY-MM-DD"; EndDate inclusivo.
type ListBillsRequest struct {
	StartDate string `json:"start_date" query:"start_date"`
	EndDate   string `json:"end_date" query:"end_date"`
	PageRequest
}

// BillResponse factura completa (cabecera + líneas snapshot).
type BillResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customer_name,omitempty"`
	StoreName    string             `json:"store_name,omitempty"`
	TotalAmount  string             `json:"total_amount"`
	CreatedAt    string             `json:"created_at"`
	Lines        []BillLineResponse `json:"lines"`
}

// BillLineResponse línea con los valores snapshot de la transacción.
type BillLineResponse struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	UnitPrice string  `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	LineTotal string  `json:"line_total"`
}

// BillHeaderResponse cabecera para listados (sin líneas).
type BillHeaderResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name,omitempty"`
	StoreName    string `json:"store_name,omitempty"`
	TotalAmount  string `json:"total_amount"`
	CreatedAt    string `json:"created_at"`
}

// BillListResponse página del ledger, más reciente primero.
type BillListResponse struct {
	Bills []BillHeaderResponse `json:"bills"`
	Page  PageResponse         `json:"page"`
}

// ToBillResponse mapea cabecera y líneas al contrato externo.
func ToBillResponse(b *entity.Bill, lines []*entity.BillLine) *BillResponse {
	resp := &BillResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		StoreName:    b.StoreName,
		TotalAmount:  Money(b.TotalAmount),
		CreatedAt:    Timestamp(b.CreatedAt),
		Lines:        make([]BillLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, BillLineResponse{
			ID:        l.ID,
			ItemID:    l.ItemID,
			ItemName:  l.ItemName,
			UnitPrice: Money(l.UnitPrice),
			Quantity:  Quantity(l.Quantity),
			LineTotal: Money(l.LineTotal),
		})
	}
	return resp
}

// ToBillHeaderResponse mapea solo la cabecera (listados).
func ToBillHeaderResponse(b *entity.Bill) BillHeaderResponse {
	return BillHeaderResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		StoreName:    b.StoreName,
		TotalAmount:  Money(b.TotalAmount),
		CreatedAt:    Timestamp(b.CreatedAt),
	}
}
