package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículo del catálogo.
const (
	CategoryGrocery      = "GROCERY"
	CategoryBeverage     = "BEVERAGE"
	CategoryDairy        = "DAIRY"
	CategorySnacks       = "SNACKS"
	CategoryHousehold    = "HOUSEHOLD"
	CategoryPersonalCare = "PERSONAL_CARE"
	CategoryOther        = "OTHER"
)

// Unidades de venta.
const (
	UnitKG    = "KG"
	UnitGram  = "GRAM"
	UnitLitre = "LITRE"
	UnitML    = "ML"
	UnitPiece = "PIECE"
	UnitPack  = "PACK"
	UnitDozen = "DOZEN"
)

// ValidCategory verifica que la categoría pertenezca al enum.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGrocery, CategoryBeverage, CategoryDairy, CategorySnacks,
		CategoryHousehold, CategoryPersonalCare, CategoryOther:
		return true
	}
	return false
}

// ValidUnit verifica que la unidad pertenezca al enum.
func ValidUnit(u string) bool {
	switch u {
	case UnitKG, UnitGram, UnitLitre, UnitML, UnitPiece, UnitPack, UnitDozen:
		return true
	}
	return false
}

// Item representa un artículo del catálogo con su pool único de stock.
// Invariantes: StockQty >= 0 y UnitPrice >= 0 en todo momento.
// StockQty solo lo muta el motor de facturación (decremento bajo bloqueo
// de fila) o un ajuste administrativo; nunca se elimina físicamente un
// artículo: la baja es IsActive=false para preservar el historial del ledger.
type Item struct {
	ID        string
	Name      string
	Category  string
	Unit      string
	UnitPrice decimal.Decimal
	StockQty  decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
