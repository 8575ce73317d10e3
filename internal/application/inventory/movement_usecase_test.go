package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorellalancissi/Vittorea/internal/application/inventory"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildMovementUC(t *testing.T) (*inventory.MovementUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(30)
	uc := inventory.NewMovementUseCase(store.Movements, store.Products, store.Orders)
	return uc, store
}

func seedProduct(t *testing.T, store *memory.Store, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:      "Eau de Parfum 100ml",
		CostPrice: decimal.NewFromInt(100),
		SalePrice: decimal.NewFromInt(140),
		Stock:     stock,
		Active:    true,
	}
	require.NoError(t, store.Products.Create(p))
	return p
}

func productStock(t *testing.T, store *memory.Store, id int) int {
	t.Helper()
	p, err := store.Products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Un ajuste manual sin estado explícito nace "completado" y aplica stock al crear.
func TestRegister_AjusteManualAplicaStockAlCrear(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	id, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeIngreso,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id, "el primer movimiento debe recibir ID 1")

	assert.Equal(t, 8, productStock(t, store, p.ID))

	mov, err := store.Movements.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.StatusCompletado, mov.Status)
	assert.False(t, mov.Date.IsZero(), "la fecha debe completarse con ahora")
}

// Un egreso "pendiente" no toca el stock hasta la confirmación.
func TestRegister_EgresoPendienteNoTocaStock(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	_, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  2,
		Status:    entity.StatusPendiente,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, productStock(t, store, p.ID),
		"el stock no debe cambiar mientras el movimiento esté pendiente")
}

// Un egreso completado mayor al stock deja el stock en 0, nunca negativo.
func TestRegister_EgresoMayorAlStockDejaCero(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 3)

	_, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, productStock(t, store, p.ID))
}

// Un movimiento sobre un producto inexistente se registra igual; el stock
// simplemente no se ajusta.
func TestRegister_ProductoInexistenteEsNoOpDeStock(t *testing.T) {
	uc, store := buildMovementUC(t)

	id, err := uc.Register(inventory.MovementInput{
		ProductID: 999,
		Type:      entity.MovementTypeIngreso,
		Quantity:  5,
	})
	require.NoError(t, err)

	mov, err := store.Movements.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, mov, "el movimiento queda en el historial aunque el producto no exista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados: pendiente → confirmado → entregado
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmTransfer_AplicaStockUnaSolaVez(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	id, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  2,
		Status:    entity.StatusPendiente,
	})
	require.NoError(t, err)

	mov, err := uc.ConfirmTransfer(id)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.StatusConfirmado, mov.Status)
	assert.Equal(t, 3, productStock(t, store, p.ID))

	// Segunda confirmación: no-op silencioso, el stock no se descuenta de nuevo
	mov, err = uc.ConfirmTransfer(id)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.StatusConfirmado, mov.Status)
	assert.Equal(t, 3, productStock(t, store, p.ID),
		"confirmar dos veces no debe aplicar el delta dos veces")
}

func TestConfirmTransfer_MovimientoInexistenteDevuelveNil(t *testing.T) {
	uc, _ := buildMovementUC(t)

	mov, err := uc.ConfirmTransfer(999)
	require.NoError(t, err)
	assert.Nil(t, mov)
}

func TestConfirmDelivery_SoloDesdeConfirmado(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	id, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  2,
		Status:    entity.StatusPendiente,
	})
	require.NoError(t, err)

	// Entregar desde "pendiente" es no-op: el estado no cambia
	mov, err := uc.ConfirmDelivery(id)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.StatusPendiente, mov.Status)
	assert.Equal(t, 5, productStock(t, store, p.ID))

	_, err = uc.ConfirmTransfer(id)
	require.NoError(t, err)

	mov, err = uc.ConfirmDelivery(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, mov.Status)
	assert.Equal(t, 3, productStock(t, store, p.ID),
		"la entrega no toca stock, ya se aplicó al confirmar")
}

func TestConfirmTransfer_PropagaEstadoAlPedido(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	order := &entity.Order{
		ClientID:  1,
		ProductID: p.ID,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(140),
		CostPrice: decimal.NewFromInt(100),
		Status:    entity.StatusPendiente,
	}
	require.NoError(t, store.Orders.Create(order))

	id, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  1,
		Status:    entity.StatusPendiente,
		OrderID:   order.ID,
	})
	require.NoError(t, err)

	_, err = uc.ConfirmTransfer(id)
	require.NoError(t, err)

	got, err := store.Orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, got.Status)

	_, err = uc.ConfirmDelivery(id)
	require.NoError(t, err)

	got, err = store.Orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregado, got.Status)
}

// Un movimiento ligado a un pedido ya borrado se confirma sin error.
func TestConfirmTransfer_PedidoColganteEsNoOp(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	id, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  1,
		Status:    entity.StatusPendiente,
		OrderID:   777, // no existe
	})
	require.NoError(t, err)

	mov, err := uc.ConfirmTransfer(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, mov.Status)
	assert.Equal(t, 4, productStock(t, store, p.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación y reversa de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RevierteStockSoloSiAplicado(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 5)

	// Pendiente: nunca aplicó stock, borrar no revierte nada
	pendID, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  2,
		Status:    entity.StatusPendiente,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(pendID))
	assert.Equal(t, 5, productStock(t, store, p.ID))

	// Completado: aplicó stock al crear, borrar lo devuelve
	doneID, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, productStock(t, store, p.ID))

	require.NoError(t, uc.Delete(doneID))
	assert.Equal(t, 5, productStock(t, store, p.ID),
		"borrar un egreso aplicado debe devolver las unidades")

	mov, err := store.Movements.GetByID(doneID)
	require.NoError(t, err)
	assert.Nil(t, mov)
}

func TestDelete_MovimientoInexistenteEsNoOp(t *testing.T) {
	uc, _ := buildMovementUC(t)
	assert.NoError(t, uc.Delete(12345))
}

// La reversa también respeta el piso en cero: borrar un ingreso aplicado
// cuando el stock ya bajó no deja valores negativos.
func TestDelete_ReversaClampeaEnCero(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 0)

	inID, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeIngreso,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, productStock(t, store, p.ID))

	// Se vende todo
	_, err = uc.Register(inventory.MovementInput{
		ProductID: p.ID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, productStock(t, store, p.ID))

	// Borrar el ingreso intenta restar 3 de un stock en 0
	require.NoError(t, uc.Delete(inID))
	assert.Equal(t, 0, productStock(t, store, p.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ResuelveProductoYOrdenaPorFecha(t *testing.T) {
	uc, store := buildMovementUC(t)
	p := seedProduct(t, store, 10)

	_, err := uc.Register(inventory.MovementInput{
		ProductID: p.ID, Type: entity.MovementTypeIngreso, Quantity: 1,
	})
	require.NoError(t, err)
	_, err = uc.Register(inventory.MovementInput{
		ProductID: 999, Type: entity.MovementTypeEgreso, Quantity: 1, Status: entity.StatusPendiente,
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	names := []string{list[0].ProductName, list[1].ProductName}
	assert.Contains(t, names, "Eau de Parfum 100ml")
	assert.Contains(t, names, "Producto eliminado",
		"la referencia colgante debe resolverse con el nombre de respaldo")
}
