package billing

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DefaultLockTimeout límite por defecto de espera por bloqueos de fila.
const DefaultLockTimeout = 5 * time.Second

// CreateBillUseCase es el motor de transacciones: confirma una venta
// multi-línea como una sola operación atómica contra el catálogo.
// Regla global de orden de bloqueo: las filas de artículos se bloquean
// siempre en orden ascendente de item_id; cualquier código que bloquee más
// de un artículo debe respetarla o el deadlock se vuelve posible.
type CreateBillUseCase struct {
	txRunner    TxRunner
	lockTimeout time.Duration
}

// NewCreateBillUseCase construye el motor. lockTimeout <= 0 usa el default.
func NewCreateBillUseCase(txRunner TxRunner, lockTimeout time.Duration) *CreateBillUseCase {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &CreateBillUseCase{txRunner: txRunner, lockTimeout: lockTimeout}
}

// CreateBill valida y confirma la venta:
//
//  1. Validación de forma (sin bloqueos): líneas presentes, cantidades > 0.
//  2. Una transacción: bloqueo exclusivo de cada artículo referenciado en
//     orden ascendente de item_id (líneas duplicadas bloquean una sola vez
//     y acumulan cantidad).
//  3. Con todos los bloqueos tomados se revalida cada línea y se recolectan
//     TODAS las fallas antes de decidir: artículos inexistentes/inactivos
//     producen ITEM_NOT_FOUND con todos los ids; faltantes de stock
//     producen INSUFFICIENT_STOCK con {item_id, available, requested} por
//     línea. Cualquier falla revierte la transacción completa.
//  4. Si todo pasa: line_total = unit_price × quantity redondeado half-up
//     a 2 decimales, total = suma exacta de los line_total; se insertan
//     cabecera y líneas snapshot y se decrementa el stock, todo en la
//     misma transacción.
//
// La espera por bloqueos está acotada por lockTimeout; al vencer se
// retorna ErrTxTimeout (reintentable). Un timeout que dispare después de
// iniciado el commit no intenta rollback: el runner ya emitió el commit.
func (uc *CreateBillUseCase) CreateBill(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}

	// Cantidad total requerida por artículo: las líneas duplicadas del
	// mismo artículo validan contra el stock acumulado, no por separado.
	required := make(map[string]decimal.Decimal, len(in.Lines))
	for _, line := range in.Lines {
		required[line.ItemID] = required[line.ItemID].Add(line.Quantity)
	}
	lockOrder := make([]string, 0, len(required))
	for id := range required {
		lockOrder = append(lockOrder, id)
	}
	sort.Strings(lockOrder) // orden global de bloqueo: item_id ascendente

	ctx, cancel := context.WithTimeout(ctx, uc.lockTimeout)
	defer cancel()

	now := time.Now()
	bill := &entity.Bill{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		StoreName:    in.StoreName,
		CreatedAt:    now,
	}
	var lines []*entity.BillLine

	err := uc.txRunner.RunBilling(ctx, func(
		itemRepo repository.ItemRepository,
		billRepo repository.BillRepository,
	) error {
		// Fase de bloqueo: tomar el lock exclusivo de cada fila, en orden.
		locked := make(map[string]*entity.Item, len(lockOrder))
		var missing []string
		for _, id := range lockOrder {
			item, err := itemRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if item == nil || !item.IsActive {
				missing = append(missing, id)
				continue
			}
			locked[id] = item
		}

		// Fase de validación: con todos los bloqueos en mano, recolectar
		// todas las fallas antes de decidir.
		if len(missing) > 0 {
			return &domain.ItemNotFoundError{ItemIDs: missing}
		}
		var shortfalls []domain.LineShortfall
		for _, id := range lockOrder {
			item := locked[id]
			if item.StockQty.LessThan(required[id]) {
				shortfalls = append(shortfalls, domain.LineShortfall{
					ItemID:    id,
					Available: item.StockQty,
					Requested: required[id],
				})
			}
		}
		if len(shortfalls) > 0 {
			return &domain.StockError{Lines: shortfalls}
		}

		// Fase de commit: totales, snapshots y decrementos.
		total := decimal.Zero
		lines = make([]*entity.BillLine, 0, len(in.Lines))
		for i, line := range in.Lines {
			item := locked[line.ItemID]
			lineTotal := item.UnitPrice.Mul(line.Quantity).Round(2)
			total = total.Add(lineTotal)
			lines = append(lines, &entity.BillLine{
				ID:        uuid.New().String(),
				BillID:    bill.ID,
				ItemID:    item.ID,
				ItemName:  item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  line.Quantity,
				LineTotal: lineTotal,
				LineNo:    i + 1,
			})
		}
		bill.TotalAmount = total

		if err := billRepo.Create(ctx, bill); err != nil {
			return err
		}
		for _, l := range lines {
			if err := billRepo.CreateLine(ctx, l); err != nil {
				return err
			}
		}
		for _, id := range lockOrder {
			if err := itemRepo.DecrementStock(ctx, id, required[id]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrTxTimeout
		}
		return nil, err
	}

	return dto.ToBillResponse(bill, lines), nil
}

func validateRequest(in dto.CreateBillRequest) error {
	fields := map[string]string{}
	if len(in.Lines) == 0 {
		fields["lines"] = "se requiere al menos una línea"
	}
	for i, line := range in.Lines {
		key := "lines[" + strconv.Itoa(i) + "]"
		if line.ItemID == "" {
			fields[key+".item_id"] = "requerido"
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			fields[key+".quantity"] = "debe ser mayor que cero"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
