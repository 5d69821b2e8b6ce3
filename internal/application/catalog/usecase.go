package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase casos de uso del catálogo: alta, actualización parcial, baja
// lógica (soft delete) y consultas paginadas. El stock solo se muta aquí
// por ajuste administrativo; los decrementos de venta son del motor de
// facturación.
type UseCase struct {
	repo repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create valida y persiste un artículo nuevo. Recolecta todos los campos
// inválidos en un solo ValidationError, no solo el primero.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	fields := map[string]string{}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		fields["name"] = "requerido"
	}
	if !entity.ValidCategory(in.Category) {
		fields["category"] = "categoría inválida"
	}
	if !entity.ValidUnit(in.Unit) {
		fields["unit"] = "unidad inválida"
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		fields["unit_price"] = "no puede ser negativo"
	}
	if in.StockQty.LessThan(decimal.Zero) {
		fields["stock_qty"] = "no puede ser negativo"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Unit:      in.Unit,
		UnitPrice: in.UnitPrice,
		StockQty:  in.StockQty,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// GetByID obtiene un artículo. Por defecto solo activos; includeInactive=true
// permite consultar inactivos para auditoría.
func (uc *UseCase) GetByID(ctx context.Context, id string, includeInactive bool) (*dto.ItemResponse, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || (!item.IsActive && !includeInactive) {
		return nil, domain.ErrItemNotFound
	}
	return dto.ToItemResponse(item), nil
}

// Update actualización parcial: solo los campos presentes cambian.
// Los ausentes conservan su valor; los presentes se validan igual que en Create.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	fields := map[string]string{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			fields["name"] = "no puede ser vacío"
		} else {
			item.Name = name
		}
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			fields["category"] = "categoría inválida"
		} else {
			item.Category = *in.Category
		}
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			fields["unit"] = "unidad inválida"
		} else {
			item.Unit = *in.Unit
		}
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			fields["unit_price"] = "no puede ser negativo"
		} else {
			item.UnitPrice = *in.UnitPrice
		}
	}
	if in.StockQty != nil {
		if in.StockQty.LessThan(decimal.Zero) {
			fields["stock_qty"] = "no puede ser negativo"
		} else {
			item.StockQty = *in.StockQty
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// Deactivate baja lógica. Idempotente: desactivar un artículo ya inactivo
// retorna éxito de nuevo sin segundo cambio de estado. Nunca hay borrado
// físico: el ledger conserva la referencia histórica.
func (uc *UseCase) Deactivate(ctx context.Context, id string) (*dto.ItemResponse, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	item, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return dto.ToItemResponse(item), nil
}

// List consulta paginada del catálogo con filtros por nombre y categoría.
// Por defecto excluye inactivos; include_inactive los incorpora (auditoría).
func (uc *UseCase) List(ctx context.Context, in dto.ListItemsRequest) (*dto.ItemListResponse, error) {
	if in.Category != "" && !entity.ValidCategory(in.Category) {
		return nil, domain.NewValidationError("category", "categoría inválida")
	}
	in.Normalize()
	list, total, err := uc.repo.List(ctx, repository.ItemFilter{
		Name:            strings.TrimSpace(in.Name),
		Category:        in.Category,
		IncludeInactive: in.IncludeInactive,
		Limit:           in.Limit,
		Offset:          in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *dto.ToItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.NewPageResponse(in.Page, in.Limit, total),
	}, nil
}
