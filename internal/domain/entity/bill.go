package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill representa la cabecera de una venta ya confirmada.
// Es inmutable: no existe operación de actualización ni borrado para ella,
// ni en los repositorios ni en los adaptadores.
type Bill struct {
	ID           string
	CustomerName string // opcional
	StoreName    string // opcional
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}

// BillLine es una línea de venta con snapshot del artículo al momento de
// la transacción. ItemID es referencia débil solo para auditoría: los
// campos snapshot son los autoritativos, por lo que mutar o desactivar el
// artículo después nunca altera una factura histórica.
type BillLine struct {
	ID        string
	BillID    string
	ItemID    string
	ItemName  string          // snapshot
	UnitPrice decimal.Decimal // snapshot
	Quantity  decimal.Decimal
	LineTotal decimal.Decimal // UnitPrice * Quantity redondeado a 2 decimales
	LineNo    int             // orden de la línea dentro de la factura (1..n)
}
