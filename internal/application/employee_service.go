package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/events"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

type EmployeeService struct {
	Repo   repository.EmployeeRepository
	Logger *logrus.Logger
	Events *events.Publisher
}

func NewEmployeeService(repo repository.EmployeeRepository, logger *logrus.Logger, pub *events.Publisher) *EmployeeService {
	if logger == nil {
		logger = logrus.New()
	}
	return &EmployeeService{Repo: repo, Logger: logger, Events: pub}
}

type AddEmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.EmployeeRole
}

type UpdateEmployeeInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Role      *entity.EmployeeRole
}

func (s *EmployeeService) Add(ctx context.Context, in AddEmployeeInput) (*entity.Employee, error) {
	e := &entity.Employee{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	}
	if err := s.Repo.Save(ctx, e); err != nil {
		s.Logger.WithError(err).Error("create employee failed")
		return nil, err
	}
	s.Logger.WithField("employee_id", e.ID).Info("employee created")
	s.publish(ctx, "employee.created", e.ID)
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context, filter repository.EmployeeFilter, page pagination.PageRequest) (pagination.Page[entity.Employee], error) {
	s.Logger.WithFields(logrus.Fields{"page": page.Page, "size": page.Size}).Debug("listing employees")
	return s.Repo.FindAll(ctx, filter, page)
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		s.Logger.WithField("employee_id", id).Warn("employee not found")
		return nil, NewNotFound("employee", id)
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in UpdateEmployeeInput) (*entity.Employee, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := false
	if in.FirstName != nil && *in.FirstName != e.FirstName {
		e.FirstName = *in.FirstName
		updated = true
	}
	if in.LastName != nil && *in.LastName != e.LastName {
		e.LastName = *in.LastName
		updated = true
	}
	if in.Email != nil && *in.Email != e.Email {
		e.Email = *in.Email
		updated = true
	}
	if in.Password != nil && *in.Password != e.Password {
		e.Password = *in.Password
		updated = true
	}
	if in.Role != nil && *in.Role != e.Role {
		e.Role = *in.Role
		updated = true
	}
	if !updated {
		s.Logger.WithField("employee_id", id).Info("no employee field changed")
		return e, nil
	}
	if err := s.Repo.Save(ctx, e); err != nil {
		return nil, err
	}
	s.Logger.WithField("employee_id", id).Info("employee updated")
	s.publish(ctx, "employee.updated", id)
	return e, nil
}

func (s *EmployeeService) Remove(ctx context.Context, id int64) (int64, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.Repo.Delete(ctx, e); err != nil {
		return 0, err
	}
	s.Logger.WithField("employee_id", id).Info("employee deleted")
	s.publish(ctx, "employee.deleted", id)
	return e.ID, nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType string, id int64) {
	if err := s.Events.Publish(ctx, events.New(eventType, "employee", id)); err != nil {
		s.Logger.WithError(err).WithField("event", eventType).Warn("event publish failed")
	}
}
