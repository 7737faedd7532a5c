package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/events"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

type CustomerService struct {
	Repo   repository.CustomerRepository
	Orders repository.OrderRepository
	Logger *logrus.Logger
	Events *events.Publisher
}

func NewCustomerService(repo repository.CustomerRepository, orders repository.OrderRepository, logger *logrus.Logger, pub *events.Publisher) *CustomerService {
	if logger == nil {
		logger = logrus.New()
	}
	return &CustomerService{Repo: repo, Orders: orders, Logger: logger, Events: pub}
}

type AddCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type UpdateCustomerInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

func (s *CustomerService) Add(ctx context.Context, in AddCustomerInput) (*entity.Customer, error) {
	c := &entity.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.Repo.Save(ctx, c); err != nil {
		s.Logger.WithError(err).Error("create customer failed")
		return nil, err
	}
	s.Logger.WithField("customer_id", c.ID).Info("customer created")
	s.publish(ctx, "customer.created", c.ID)
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter, page pagination.PageRequest) (pagination.Page[entity.Customer], error) {
	s.Logger.WithFields(logrus.Fields{"page": page.Page, "size": page.Size}).Debug("listing customers")
	return s.Repo.FindAll(ctx, filter, page)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		s.Logger.WithField("customer_id", id).Warn("customer not found")
		return nil, NewNotFound("customer", id)
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in UpdateCustomerInput) (*entity.Customer, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := false
	if in.FirstName != nil && *in.FirstName != c.FirstName {
		c.FirstName = *in.FirstName
		updated = true
	}
	if in.LastName != nil && *in.LastName != c.LastName {
		c.LastName = *in.LastName
		updated = true
	}
	if in.Email != nil && *in.Email != c.Email {
		c.Email = *in.Email
		updated = true
	}
	if in.PhoneNumber != nil && *in.PhoneNumber != c.PhoneNumber {
		c.PhoneNumber = *in.PhoneNumber
		updated = true
	}
	if !updated {
		s.Logger.WithField("customer_id", id).Info("no customer field changed")
		return c, nil
	}
	if err := s.Repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.WithField("customer_id", id).Info("customer updated")
	s.publish(ctx, "customer.updated", id)
	return c, nil
}

// Remove deletes the customer after severing the customer reference of
// every order it owns. Orders survive the deletion; only the link is
// cleared.
func (s *CustomerService) Remove(ctx context.Context, id int64) (int64, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(c.OrderIDs) > 0 {
		s.Logger.WithFields(logrus.Fields{"customer_id": id, "orders": len(c.OrderIDs)}).Debug("severing customer from orders")
		for _, orderID := range c.OrderIDs {
			o, err := s.Orders.FindByID(ctx, orderID)
			if err != nil {
				return 0, err
			}
			if o == nil {
				continue
			}
			o.CustomerID = nil
			if err := s.Orders.Save(ctx, o); err != nil {
				return 0, err
			}
		}
		c.OrderIDs = nil
	}
	if err := s.Repo.Delete(ctx, c); err != nil {
		return 0, err
	}
	s.Logger.WithField("customer_id", id).Info("customer deleted")
	s.publish(ctx, "customer.deleted", id)
	return c.ID, nil
}

func (s *CustomerService) publish(ctx context.Context, eventType string, id int64) {
	if err := s.Events.Publish(ctx, events.New(eventType, "customer", id)); err != nil {
		s.Logger.WithError(err).WithField("event", eventType).Warn("event publish failed")
	}
}
