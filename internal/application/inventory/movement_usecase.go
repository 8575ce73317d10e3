// Package inventory implementa el ciclo de vida de los movimientos de stock.
//
// Los egresos generados por un pedido nacen en "pendiente" (sin tocar stock)
// y avanzan con confirmaciones explícitas:
//
//	pendiente ──confirmTransfer──► confirmado ──confirmDelivery──► entregado
//
// El delta de stock se aplica exactamente una vez, al pasar a confirmado.
// Los movimientos manuales (ajustes) se crean como "completado" y aplican el
// delta en la creación. Las transiciones inválidas son no-op silenciosos.
package inventory

import (
	"sort"
	"time"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// MovementUseCase registra movimientos y opera la máquina de estados.
type MovementUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) *MovementUseCase {
	return &MovementUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

// MovementInput entrada interna para registrar un movimiento.
// OrderID distinto de cero liga el movimiento a un pedido.
type MovementInput struct {
	ProductID int
	Type      string
	Quantity  int
	Status    string
	OrderID   int
	Date      time.Time
	Reason    string
	Notes     string
}

// Register crea el movimiento y devuelve su ID.
//
// Status vacío equivale a "completado". Si el estado inicial NO es
// "pendiente", el delta de stock se aplica de inmediato (con piso en 0);
// un producto inexistente deja el stock sin tocar, sin error.
func (uc *MovementUseCase) Register(in MovementInput) (int, error) {
	if in.Status == "" {
		in.Status = entity.StatusCompletado
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	mov := &entity.Movement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Status:    in.Status,
		OrderID:   in.OrderID,
		Date:      in.Date,
		Reason:    in.Reason,
		Notes:     in.Notes,
	}
	if err := uc.movementRepo.Create(mov); err != nil {
		return 0, err
	}

	if mov.Status != entity.StatusPendiente {
		if err := uc.productRepo.AdjustStock(mov.ProductID, mov.StockDelta()); err != nil {
			return 0, err
		}
	}
	return mov.ID, nil
}

// RegisterFromRequest adapta el request HTTP a Register.
func (uc *MovementUseCase) RegisterFromRequest(in dto.RegisterMovementRequest) (int, error) {
	input := MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Status:    in.Status,
		Reason:    in.Reason,
		Notes:     in.Notes,
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	return uc.Register(input)
}

// ConfirmTransfer transición pendiente → confirmado.
//
// Aplica el delta de stock (primera y única aplicación) y, si el movimiento
// tiene pedido asociado, propaga "confirmado" al pedido. Si el movimiento no
// existe devuelve nil; si no está en "pendiente" lo devuelve sin cambios.
func (uc *MovementUseCase) ConfirmTransfer(movementID int) (*entity.Movement, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil || mov == nil {
		return nil, err
	}
	if mov.Status != entity.StatusPendiente {
		return mov, nil
	}

	mov.Status = entity.StatusConfirmado
	if err := uc.movementRepo.Update(mov); err != nil {
		return nil, err
	}
	if err := uc.productRepo.AdjustStock(mov.ProductID, mov.StockDelta()); err != nil {
		return nil, err
	}
	if mov.OrderID != 0 {
		uc.cascadeOrderStatus(mov.OrderID, entity.StatusConfirmado)
	}
	return mov, nil
}

// ConfirmDelivery transición confirmado → entregado.
// No toca stock (ya aplicado en la confirmación); propaga el estado al pedido.
func (uc *MovementUseCase) ConfirmDelivery(movementID int) (*entity.Movement, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil || mov == nil {
		return nil, err
	}
	if mov.Status != entity.StatusConfirmado {
		return mov, nil
	}

	mov.Status = entity.StatusEntregado
	if err := uc.movementRepo.Update(mov); err != nil {
		return nil, err
	}
	if mov.OrderID != 0 {
		uc.cascadeOrderStatus(mov.OrderID, entity.StatusEntregado)
	}
	return mov, nil
}

// Delete elimina el movimiento.
//
// Revierte el delta de stock solo si el movimiento ya lo había aplicado
// (estado distinto de "pendiente"). El pedido asociado no se limpia: la
// referencia colgante se tolera.
func (uc *MovementUseCase) Delete(movementID int) error {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil || mov == nil {
		return err
	}
	if mov.Status != entity.StatusPendiente {
		if err := uc.productRepo.AdjustStock(mov.ProductID, -mov.StockDelta()); err != nil {
			return err
		}
	}
	return uc.movementRepo.Delete(movementID)
}

// List devuelve los movimientos con el producto resuelto, más reciente primero.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	movs, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		name := "Producto eliminado"
		if p, _ := uc.productRepo.GetByID(m.ProductID); p != nil {
			name = p.Name
		}
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: name,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Status:      m.Status,
			OrderID:     m.OrderID,
			Date:        m.Date,
			Reason:      m.Reason,
			Notes:       m.Notes,
		})
	}
	// Más reciente primero, como el historial del panel
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// cascadeOrderStatus propaga el estado al pedido ligado; pedido inexistente
// es no-op.
func (uc *MovementUseCase) cascadeOrderStatus(orderID int, status string) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil || order == nil {
		return
	}
	order.Status = status
	_ = uc.orderRepo.Update(order)
}
