package tools

import (
	"context"
	"encoding/json"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/catalog"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
)

type itemIDArgs struct {
	ItemID string `json:"item_id"`
}

type getItemArgs struct {
	ItemID          string `json:"item_id"`
	IncludeInactive bool   `json:"include_inactive"`
}

type updateItemArgs struct {
	ItemID string `json:"item_id"`
	dto.UpdateItemRequest
}

// RegisterInventoryTools registra las tools del catálogo sobre el mismo
// caso de uso que usan los handlers HTTP.
func RegisterInventoryTools(r *Registry, uc *catalog.UseCase) {
	r.Register(Tool{
		Name:        "inventory_add_item",
		Description: "Crea un artículo del catálogo con precio y stock inicial.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in dto.CreateItemRequest
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return uc.Create(ctx, in)
		},
	})
	r.Register(Tool{
		Name:        "inventory_get_item",
		Description: "Obtiene un artículo por ID (solo activos salvo include_inactive).",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in getItemArgs
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return uc.GetByID(ctx, in.ItemID, in.IncludeInactive)
		},
	})
	r.Register(Tool{
		Name:        "inventory_update_item",
		Description: "Actualización parcial de un artículo: solo los campos presentes cambian.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in updateItemArgs
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return uc.Update(ctx, in.ItemID, in.UpdateItemRequest)
		},
	})
	r.Register(Tool{
		Name:        "inventory_delete_item",
		Description: "Baja lógica de un artículo (idempotente); el historial de ventas lo conserva.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in itemIDArgs
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return uc.Deactivate(ctx, in.ItemID)
		},
	})
	r.Register(Tool{
		Name:        "inventory_list_items",
		Description: "Lista artículos activos con filtros por nombre y categoría, paginado.",
		Handler: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			var in dto.ListItemsRequest
			if err := decode(args, &in); err != nil {
				return nil, err
			}
			return uc.List(ctx, in)
		},
	})
}
