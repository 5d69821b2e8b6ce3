package tools

import (
	"context"
	"encoding/json"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
)

type billIDArgs struct {
	BillID string `json:"bill_id"`
}

// RegisterBillingTools registra las tools del motor de ventas y del ledger.
func RegisterBillingTools(r *Registry, engine *billing.CreateBillUseCase, ledger *billing.LedgerUseCase) {
	r.Register(Tool{
		Name:        "billing_create_bill",
		Description: "Confirma una venta multi-línea de forma atómica y descuenta stock.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in dto.CreateBillRequest
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return engine.CreateBill(ctx, in)
		},
	})
	r.Register(Tool{
		Name:        "billing_get_bill",
		Description: "Obtiene una factura con todas sus líneas snapshot.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in billIDArgs
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return ledger.GetBill(ctx, in.BillID)
		},
	})
	r.Register(Tool{
		Name:        "billing_list_bills",
		Description: "Lista facturas por rango de fechas, más reciente primero, paginado.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in dto.ListBillsRequest
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return ledger.ListBills(ctx, in)
		},
	})
}
