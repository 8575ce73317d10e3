package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/inventory"
	"github.com/fiorellalancissi/Vittorea/internal/application/orders"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/memory"
)

func buildOrderUC(t *testing.T) (*orders.OrderUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(30)
	movementUC := inventory.NewMovementUseCase(store.Movements, store.Products, store.Orders)
	uc := orders.NewOrderUseCase(store.Clients, store.Products, store.Orders, movementUC)
	return uc, store
}

func seedPerfume(t *testing.T, store *memory.Store) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:      "Ámbar Nocturno 50ml",
		CostPrice: decimal.NewFromInt(10000),
		SalePrice: decimal.NewFromInt(14000),
		Stock:     10,
		Active:    true,
	}
	require.NoError(t, store.Products.Create(p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de creación de venta
// ──────────────────────────────────────────────────────────────────────────────

// El registro de una venta crea cliente, pedido y movimiento de egreso
// pendiente en una sola operación.
func TestCreate_FlujoCompleto(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	out, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Lucía Fernández",
		ClientPhone: "+54 11 5555-1234",
		ClientEmail: "lucia@example.com",
		ProductID:   p.ID,
		Quantity:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Pedido con precios congelados del producto
	assert.Equal(t, 1, out.Order.ID)
	assert.Equal(t, entity.StatusPendiente, out.Order.Status)
	assert.True(t, out.Order.UnitPrice.Equal(decimal.NewFromInt(14000)),
		"el precio unitario debe congelarse del producto")
	assert.True(t, out.Order.Total.Equal(decimal.NewFromInt(28000)))
	assert.True(t, out.Order.Profit.Equal(decimal.NewFromInt(8000)))

	// Cliente creado con la última compra en la fecha del pedido
	assert.Equal(t, "Lucía Fernández", out.Client.Name)
	client, err := store.Clients.GetByPhone("+54 11 5555-1234")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, out.Order.Date, client.LastPurchase)

	// Movimiento de egreso pendiente ligado al pedido; stock intacto
	movs, err := store.Movements.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEgreso, movs[0].Type)
	assert.Equal(t, entity.StatusPendiente, movs[0].Status)
	assert.Equal(t, out.Order.ID, movs[0].OrderID)
	assert.Equal(t, "Venta", movs[0].Reason)
	assert.Contains(t, movs[0].Notes, "Pedido #1")
	assert.Contains(t, movs[0].Notes, "Lucía Fernández")

	got, err := store.Products.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock, "el stock no se descuenta hasta confirmar la transferencia")
}

// Dos ventas con el mismo teléfono reutilizan el cliente.
func TestCreate_DeduplicaClientePorTelefono(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	_, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Lucía",
		ClientPhone: "555-1234",
		ProductID:   p.ID,
		Quantity:    1,
	})
	require.NoError(t, err)

	out, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Lucía F.", // nombre distinto, mismo teléfono
		ClientPhone: "555-1234",
		ProductID:   p.ID,
		Quantity:    1,
	})
	require.NoError(t, err)

	clients, err := store.Clients.List()
	require.NoError(t, err)
	assert.Len(t, clients, 1, "el mismo teléfono no debe duplicar clientes")
	assert.Equal(t, "Lucía", out.Client.Name, "se conserva el cliente original")
}

// Si el producto no existe, los precios del request sirven de respaldo.
func TestCreate_ProductoInexistenteUsaPreciosDelRequest(t *testing.T) {
	uc, _ := buildOrderUC(t)

	out, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Marta",
		ClientPhone: "555-9999",
		ProductID:   42,
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(9000),
		CostPrice:   decimal.NewFromInt(6000),
	})
	require.NoError(t, err)

	assert.True(t, out.Order.UnitPrice.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, "Producto eliminado", out.Order.ProductName)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	cases := []dto.CreateOrderRequest{
		{ProductID: p.ID, Quantity: 1},                           // sin teléfono
		{ClientPhone: "555", Quantity: 1},                        // sin producto
		{ClientPhone: "555", ProductID: p.ID},                    // sin cantidad
		{ClientPhone: "555", ProductID: p.ID, Quantity: -2},      // cantidad negativa
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStatus_VistaPublica(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	out, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Lucía",
		ClientPhone: "555-1234",
		ProductID:   p.ID,
		Quantity:    1,
	})
	require.NoError(t, err)

	status, err := uc.GetStatus(out.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, entity.StatusPendiente, status.Status)
	assert.True(t, status.Total.Equal(decimal.NewFromInt(14000)))

	missing, err := uc.GetStatus(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdate_EstadoYNotas(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName:  "Lucía",
		ClientPhone: "555-1234",
		ProductID:   p.ID,
		Quantity:    1,
	})
	require.NoError(t, err)

	status := entity.StatusEntregado
	notes := "entregado en mano"
	out, err := uc.Update(created.Order.ID, dto.UpdateOrderRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.StatusEntregado, out.Status)
	assert.Equal(t, "entregado en mano", out.Notes)
}

func TestListByClient_MasRecientePrimero(t *testing.T) {
	uc, store := buildOrderUC(t)
	p := seedPerfume(t, store)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(dto.CreateOrderRequest{
			ClientName:  "Lucía",
			ClientPhone: "555-1234",
			ProductID:   p.ID,
			Quantity:    1,
		})
		require.NoError(t, err)
	}
	client, err := store.Clients.GetByPhone("555-1234")
	require.NoError(t, err)

	list, err := uc.ListByClient(client.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Date.After(list[i-1].Date),
			"los pedidos deben venir del más reciente al más antiguo")
	}
}
