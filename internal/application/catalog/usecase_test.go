package catalog_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/catalog"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
)

// fakeItemRepo implementación en memoria del puerto de items.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) clone(i *entity.Item) *entity.Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = r.clone(item)
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.clone(r.items[id]), nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = r.clone(item)
	return nil
}

func (r *fakeItemRepo) Deactivate(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if it.IsActive {
		it.IsActive = false
		it.UpdatedAt = time.Now()
	}
	return r.clone(it), nil
}

func (r *fakeItemRepo) List(_ context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	var all []*entity.Item
	for _, it := range r.items {
		if !f.IncludeInactive && !it.IsActive {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		all = append(all, r.clone(it))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if f.Offset >= len(all) {
		return nil, total, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (r *fakeItemRepo) GetForUpdate(_ context.Context, id string) (*entity.Item, error) {
	return r.clone(r.items[id]), nil
}

func (r *fakeItemRepo) DecrementStock(_ context.Context, id string, qty decimal.Decimal) error {
	r.items[id].StockQty = r.items[id].StockQty.Sub(qty)
	return nil
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCreate() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:      "Azúcar 1kg",
		Category:  entity.CategoryGrocery,
		Unit:      entity.UnitKG,
		UnitPrice: decimal.RequireFromString("160.00"),
		StockQty:  decimal.RequireFromString("50"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Valido(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el ID lo asigna el sistema")
	assert.Equal(t, "Azúcar 1kg", out.Name)
	assert.Equal(t, "160.00", out.UnitPrice, "dinero como string decimal")
	assert.Equal(t, float64(50), out.StockQty)
	assert.True(t, out.IsActive, "todo artículo nace activo")
	assert.NotEmpty(t, out.CreatedAt)
}

func TestCreate_RecolectaTodosLosCamposInvalidos(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:      "   ",
		Category:  "JUGUETES",
		Unit:      "CAJA",
		UnitPrice: decimal.RequireFromString("-1"),
		StockQty:  decimal.RequireFromString("-5"),
	})
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 5, "todos los campos inválidos en una sola respuesta")
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "category")
	assert.Contains(t, vErr.Fields, "unit")
	assert.Contains(t, vErr.Fields, "unit_price")
	assert.Contains(t, vErr.Fields, "stock_qty")
}

func TestCreate_PrecioCeroEsValido(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	in := validCreate()
	in.UnitPrice = decimal.Zero
	in.StockQty = decimal.Zero

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "0.00", out.UnitPrice)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / visibilidad de inactivos
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_InactivoOcultoPorDefecto(t *testing.T) {
	repo := newFakeItemRepo()
	uc := catalog.NewUseCase(repo)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	_, err = uc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), created.ID, false)
	assert.ErrorIs(t, err, domain.ErrItemNotFound,
		"un inactivo se comporta como inexistente en la lectura normal")

	out, err := uc.GetByID(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.False(t, out.IsActive, "include_inactive lo expone para auditoría")
}

func TestGetByID_NoExiste(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	_, err := uc.GetByID(context.Background(), "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ParcialConservaLosAusentes(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		UnitPrice: decPtr("175.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "175.50", out.UnitPrice)
	assert.Equal(t, created.Name, out.Name, "los campos ausentes no cambian")
	assert.Equal(t, created.Category, out.Category)
	assert.Equal(t, created.StockQty, out.StockQty)
}

func TestUpdate_CampoInvalidoRechazaTodo(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateItemRequest{
		Name:      strPtr("Azúcar morena"),
		UnitPrice: decPtr("-3"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Nada debe haberse aplicado, ni siquiera el campo válido.
	got, err := uc.GetByID(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.UnitPrice, got.UnitPrice)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateItemRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deactivate
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivate_Idempotente(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	first, err := uc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, first.IsActive)

	// Segunda baja: mismo resultado, sin error ni cambio de updated_at.
	second, err := uc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, second.IsActive)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
}

func TestDeactivate_NoExiste(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	_, err := uc.Deactivate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltrosYPaginacion(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	seed := []dto.CreateItemRequest{
		{Name: "Azúcar", Category: entity.CategoryGrocery, Unit: entity.UnitKG, UnitPrice: decimal.New(1, 0), StockQty: decimal.New(1, 0)},
		{Name: "Azúcar morena", Category: entity.CategoryGrocery, Unit: entity.UnitKG, UnitPrice: decimal.New(1, 0), StockQty: decimal.New(1, 0)},
		{Name: "Leche", Category: entity.CategoryDairy, Unit: entity.UnitLitre, UnitPrice: decimal.New(1, 0), StockQty: decimal.New(1, 0)},
	}
	for _, in := range seed {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), dto.ListItemsRequest{Name: "azúcar"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "filtro por subcadena case-insensitive")
	assert.Equal(t, 2, out.Page.Total)

	out, err = uc.List(context.Background(), dto.ListItemsRequest{Category: entity.CategoryDairy})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Leche", out.Items[0].Name)

	out, err = uc.List(context.Background(), dto.ListItemsRequest{
		PageRequest: dto.PageRequest{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Page.Total)
	assert.Equal(t, 2, out.Page.TotalPages)
}

func TestList_ExcluyeInactivosPorDefecto(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	a, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	in := validCreate()
	in.Name = "Café"
	_, err = uc.Create(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Deactivate(context.Background(), a.ID)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), dto.ListItemsRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Café", out.Items[0].Name)

	out, err = uc.List(context.Background(), dto.ListItemsRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "include_inactive incorpora los dados de baja")
}

func TestList_CategoriaInvalida(t *testing.T) {
	uc := catalog.NewUseCase(newFakeItemRepo())
	_, err := uc.List(context.Background(), dto.ListItemsRequest{Category: "NO_EXISTE"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
