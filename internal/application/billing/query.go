package billing

import (
	"context"
	"time"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el ledger de ventas.
// El ledger no tiene operaciones de mutación: se omiten en el puerto y en
// ambos adaptadores, no solo por convención.
type LedgerUseCase struct {
	billRepo repository.BillRepository
}

// NewLedgerUseCase construye las consultas del ledger.
func NewLedgerUseCase(billRepo repository.BillRepository) *LedgerUseCase {
	return &LedgerUseCase{billRepo: billRepo}
}

// GetBill obtiene cabecera y todas las líneas de una factura.
func (uc *LedgerUseCase) GetBill(ctx context.Context, id string) (*dto.BillResponse, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	bill, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrBillNotFound
	}
	lines, err := uc.billRepo.GetLinesByBillID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToBillResponse(bill, lines), nil
}

// ListBills página de cabeceras, más reciente primero, con rango de fechas
// opcional sobre created_at. Fechas "YYYY-MM-DD"; la fecha final es
// inclusiva (se acota con el inicio del día siguiente).
func (uc *LedgerUseCase) ListBills(ctx context.Context, in dto.ListBillsRequest) (*dto.BillListResponse, error) {
	filter := repository.BillFilter{}
	fields := map[string]string{}
	var from, to time.Time
	if in.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			fields["start_date"] = "formato esperado YYYY-MM-DD"
		} else {
			from = parsed
			filter.From = &from
		}
	}
	if in.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			fields["end_date"] = "formato esperado YYYY-MM-DD"
		} else {
			to = parsed
			end := to.Add(24 * time.Hour)
			filter.To = &end
		}
	}
	// El orden se valida sobre las fechas tal como llegaron, antes de sumar
	// el día inclusivo; comparar después confundiría end = start - 1 día con
	// un rango válido.
	if filter.From != nil && filter.To != nil && to.Before(from) {
		fields["end_date"] = "debe ser posterior o igual a start_date"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	in.Normalize()
	filter.Limit = in.Limit
	filter.Offset = in.Offset()

	bills, total, err := uc.billRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	headers := make([]dto.BillHeaderResponse, 0, len(bills))
	for _, b := range bills {
		headers = append(headers, dto.ToBillHeaderResponse(b))
	}
	return &dto.BillListResponse{
		Bills: headers,
		Page:  dto.NewPageResponse(in.Page, in.Limit, total),
	}, nil
}
