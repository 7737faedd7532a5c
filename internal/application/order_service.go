package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/events"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

// ProductCacheInvalidator drops a cached product read whose association
// state changed outside ProductService. Satisfied by ProductService.
type ProductCacheInvalidator interface {
	InvalidateProduct(ctx context.Context, id int64)
}

// OrderService orchestrates the order aggregate and owns the
// order<->product association rules. Both sides of the association are
// mutated in memory through the entity helpers, then persisted with a
// single Save on the owning side.
type OrderService struct {
	Repo      repository.OrderRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	Logger    *logrus.Logger
	Events    *events.Publisher
	Cache     ProductCacheInvalidator

	// now stamps CreatedDate; overridable in tests
	now func() time.Time
}

func NewOrderService(repo repository.OrderRepository, customers repository.CustomerRepository, products repository.ProductRepository, logger *logrus.Logger, pub *events.Publisher, cache ProductCacheInvalidator) *OrderService {
	if logger == nil {
		logger = logrus.New()
	}
	return &OrderService{
		Repo:      repo,
		Customers: customers,
		Products:  products,
		Logger:    logger,
		Events:    pub,
		Cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type AddOrderInput struct {
	Status     entity.OrderStatus
	CustomerID *int64
}

type UpdateOrderInput struct {
	Status *entity.OrderStatus
}

// Add creates an order, stamping CreatedDate exactly once. The creation
// timestamp is never client-supplied. A customer reference is optional;
// when present it must resolve.
func (s *OrderService) Add(ctx context.Context, in AddOrderInput) (*entity.Order, error) {
	o := &entity.Order{
		CreatedDate: s.now(),
		Status:      in.Status,
	}
	if o.Status == "" {
		o.Status = entity.StatusNew
	}
	if in.CustomerID != nil {
		c, err := s.Customers.FindByID(ctx, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			s.Logger.WithField("customer_id", *in.CustomerID).Warn("customer not found")
			return nil, NewNotFound("customer", *in.CustomerID)
		}
		o.CustomerID = &c.ID
	}
	if err := s.Repo.Save(ctx, o); err != nil {
		s.Logger.WithError(err).Error("create order failed")
		return nil, err
	}
	s.Logger.WithField("order_id", o.ID).Info("order created")
	s.publish(ctx, "order.created", o.ID)
	return o, nil
}

func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter, page pagination.PageRequest) (pagination.Page[entity.Order], error) {
	s.Logger.WithFields(logrus.Fields{"page": page.Page, "size": page.Size}).Debug("listing orders")
	return s.Repo.FindAll(ctx, filter, page)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		s.Logger.WithField("order_id", id).Warn("order not found")
		return nil, NewNotFound("order", id)
	}
	return o, nil
}

// Update applies the partial payload. Only the status is mutable;
// transition legality is deliberately not checked.
func (s *OrderService) Update(ctx context.Context, id int64, in UpdateOrderInput) (*entity.Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status == nil || *in.Status == o.Status {
		s.Logger.WithField("order_id", id).Info("no order field changed")
		return o, nil
	}
	o.Status = *in.Status
	if err := s.Repo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"order_id": id, "status": o.Status}).Info("order updated")
	s.publish(ctx, "order.updated", id)
	return o, nil
}

func (s *OrderService) Remove(ctx context.Context, id int64) (int64, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.Repo.Delete(ctx, o); err != nil {
		return 0, err
	}
	// deleting the order unlinks every product it held
	for _, productID := range o.ProductIDs {
		s.invalidateProduct(ctx, productID)
	}
	s.Logger.WithField("order_id", id).Info("order deleted")
	s.publish(ctx, "order.deleted", id)
	return o.ID, nil
}

// AddProduct links an existing product to an existing order on both
// sides of the association and persists through the owning side.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID int64) (*entity.Order, error) {
	o, p, err := s.resolvePair(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	o.AddProduct(p)
	if err := s.Repo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, productID)
	s.Logger.WithFields(logrus.Fields{"order_id": orderID, "product_id": productID}).Info("product added to order")
	s.publish(ctx, "order.product_added", orderID)
	return o, nil
}

// RemoveProduct unlinks the product from both sides. Removing a product
// the order does not hold is a no-op, so the call is idempotent with
// respect to presence.
func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID int64) (*entity.Order, error) {
	o, p, err := s.resolvePair(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	o.RemoveProduct(p)
	if err := s.Repo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, productID)
	s.Logger.WithFields(logrus.Fields{"order_id": orderID, "product_id": productID}).Info("product removed from order")
	s.publish(ctx, "order.product_removed", orderID)
	return o, nil
}

func (s *OrderService) resolvePair(ctx context.Context, orderID, productID int64) (*entity.Order, *entity.Product, error) {
	o, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.Products.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		s.Logger.WithField("product_id", productID).Warn("product not found")
		return nil, nil, NewNotFound("product", productID)
	}
	return o, p, nil
}

func (s *OrderService) invalidateProduct(ctx context.Context, id int64) {
	if s.Cache != nil {
		s.Cache.InvalidateProduct(ctx, id)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, id int64) {
	if err := s.Events.Publish(ctx, events.New(eventType, "order", id)); err != nil {
		s.Logger.WithError(err).WithField("event", eventType).Warn("event publish failed")
	}
}
