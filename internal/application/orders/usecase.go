// Package orders implementa el registro y la consulta de pedidos/ventas.
package orders

import (
	"fmt"
	"sort"
	"time"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/inventory"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. La creación compone una secuencia
// fija de cinco pasos (ver Create); no hay rollback parcial.
type OrderUseCase struct {
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	movements   *inventory.MovementUseCase
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	movements *inventory.MovementUseCase,
) *OrderUseCase {
	return &OrderUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		movements:   movements,
	}
}

// Create registra una venta:
//
//  1. Busca o crea el cliente por teléfono (nunca queda en nil).
//  2. Congela precio de venta y costo del producto en el pedido; si el
//     producto no resuelve, usa los precios del request como respaldo.
//  3. Agrega el pedido (estado por defecto "pendiente").
//  4. Actualiza la fecha de última compra del cliente a la del pedido.
//  5. Genera el movimiento de egreso "pendiente" ligado al pedido: el stock
//     no se descuenta hasta confirmar la transferencia.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.ClientPhone == "" || in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.findOrCreateClient(in)
	if err != nil {
		return nil, err
	}

	unitPrice := in.UnitPrice
	costPrice := in.CostPrice
	product, _ := uc.productRepo.GetByID(in.ProductID)
	if product != nil {
		unitPrice = product.SalePrice
		costPrice = product.CostPrice
	}

	status := in.Status
	if status == "" {
		status = entity.StatusPendiente
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	order := &entity.Order{
		ClientID:  client.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		CostPrice: costPrice,
		Date:      date,
		Status:    status,
		Notes:     in.Notes,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	client.LastPurchase = order.Date
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}

	_, err = uc.movements.Register(inventory.MovementInput{
		ProductID: order.ProductID,
		Type:      entity.MovementTypeEgreso,
		Quantity:  order.Quantity,
		Status:    entity.StatusPendiente,
		OrderID:   order.ID,
		Date:      order.Date,
		Reason:    "Venta",
		Notes:     fmt.Sprintf("Pedido #%d - %s", order.ID, client.Name),
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Order:  uc.toOrderResponse(order, product, client),
		Client: toClientResponse(client),
	}, nil
}

func (uc *OrderUseCase) findOrCreateClient(in dto.CreateOrderRequest) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByPhone(in.ClientPhone)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}
	client = &entity.Client{
		Name:         in.ClientName,
		Phone:        in.ClientPhone,
		Email:        in.ClientEmail,
		LastPurchase: time.Now(),
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID devuelve el pedido resuelto, o nil, nil si no existe.
func (uc *OrderUseCase) GetByID(id int) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	out := uc.resolve(order)
	return &out, nil
}

// GetStatus vista pública del estado de un pedido (storefront).
func (uc *OrderUseCase) GetStatus(id int) (*dto.OrderStatusResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	return &dto.OrderStatusResponse{
		ID:     order.ID,
		Status: order.Status,
		Date:   order.Date,
		Total:  order.Total(),
	}, nil
}

// Update actualiza estado y/o notas. Devuelve nil, nil si el pedido no existe.
func (uc *OrderUseCase) Update(id int, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	out := uc.resolve(order)
	return &out, nil
}

// List devuelve todos los pedidos resueltos, más reciente primero.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.resolveAll(list), nil
}

// ListByClient devuelve los pedidos de un cliente, más reciente primero.
func (uc *OrderUseCase) ListByClient(clientID int) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return uc.resolveAll(list), nil
}

func (uc *OrderUseCase) resolveAll(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, uc.resolve(o))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (uc *OrderUseCase) resolve(order *entity.Order) dto.OrderResponse {
	product, _ := uc.productRepo.GetByID(order.ProductID)
	client, _ := uc.clientRepo.GetByID(order.ClientID)
	return uc.toOrderResponse(order, product, client)
}

func (uc *OrderUseCase) toOrderResponse(order *entity.Order, product *entity.Product, client *entity.Client) dto.OrderResponse {
	productName := "Producto eliminado"
	if product != nil {
		productName = product.Name
	}
	clientName := ""
	if client != nil {
		clientName = client.Name
	}
	return dto.OrderResponse{
		ID:          order.ID,
		ClientID:    order.ClientID,
		ClientName:  clientName,
		ProductID:   order.ProductID,
		ProductName: productName,
		Quantity:    order.Quantity,
		UnitPrice:   order.UnitPrice,
		CostPrice:   order.CostPrice,
		Total:       order.Total(),
		Profit:      order.Profit(),
		Date:        order.Date,
		Status:      order.Status,
		Notes:       order.Notes,
	}
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		LastPurchase:  c.LastPurchase,
		InternalNotes: c.InternalNotes,
		Tags:          c.Tags,
	}
}
