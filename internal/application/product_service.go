package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/entity"
	"github.com/iamlimeu/employeeProjectRestAPI/internal/domain/repository"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/events"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/helpers"
	"github.com/iamlimeu/employeeProjectRestAPI/pkg/pagination"
)

type ProductService struct {
	Repo     repository.ProductRepository
	Logger   *logrus.Logger
	Events   *events.Publisher
	Redis    *redis.Client // optional read cache for GetByID
	CacheTTL time.Duration
}

func NewProductService(repo repository.ProductRepository, logger *logrus.Logger, pub *events.Publisher, rdb *redis.Client, cacheTTL time.Duration) *ProductService {
	if logger == nil {
		logger = logrus.New()
	}
	return &ProductService{Repo: repo, Logger: logger, Events: pub, Redis: rdb, CacheTTL: cacheTTL}
}

type AddProductInput struct {
	Name        string
	Description string
	Price       string
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *string
}

func productCacheKey(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}

func (s *ProductService) Add(ctx context.Context, in AddProductInput) (*entity.Product, error) {
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		s.Logger.WithError(err).Error("create product failed")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name, "price": p.Price.String()}).Info("product created")
	s.publish(ctx, "product.created", p.ID)
	return p, nil
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter, page pagination.PageRequest) (pagination.Page[entity.Product], error) {
	s.Logger.WithFields(logrus.Fields{"page": page.Page, "size": page.Size}).Debug("listing products")
	return s.Repo.FindAll(ctx, filter, page)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if s.Redis != nil {
		var cached entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, productCacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		s.Logger.WithField("product_id", id).Warn("product not found")
		return nil, NewNotFound("product", id)
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, productCacheKey(id), p, s.CacheTTL); err != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("product cache write failed")
		}
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in UpdateProductInput) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, NewNotFound("product", id)
	}
	updated := false
	if in.Name != nil && *in.Name != p.Name {
		p.Name = *in.Name
		updated = true
	}
	if in.Description != nil && *in.Description != p.Description {
		p.Description = *in.Description
		updated = true
	}
	if in.Price != nil {
		price, err := ParsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		if !price.Equal(p.Price) {
			p.Price = price
			updated = true
		}
	}
	if !updated {
		s.Logger.WithField("product_id", id).Info("no product field changed")
		return p, nil
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.InvalidateProduct(ctx, id)
	s.Logger.WithField("product_id", id).Info("product updated")
	s.publish(ctx, "product.updated", id)
	return p, nil
}

// Remove deletes the product unless any order still references it.
// The repository materializes the full order collection, so an empty
// slice is trustworthy here.
func (s *ProductService) Remove(ctx context.Context, id int64) (int64, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		s.Logger.WithField("product_id", id).Warn("product not found")
		return 0, NewNotFound("product", id)
	}
	if p.ReferencedByOrders() {
		s.Logger.WithFields(logrus.Fields{"product_id": id, "orders": len(p.OrderIDs)}).Warn("product still referenced by orders")
		return 0, &ConflictError{
			Entity: "product",
			ID:     id,
			Reason: fmt.Sprintf("cannot delete product referenced by %d order(s)", len(p.OrderIDs)),
		}
	}
	if err := s.Repo.Delete(ctx, p); err != nil {
		return 0, err
	}
	s.InvalidateProduct(ctx, id)
	s.Logger.WithField("product_id", id).Info("product deleted")
	s.publish(ctx, "product.deleted", id)
	return p.ID, nil
}

// InvalidateProduct drops the cached read of a product. Called here on
// update and delete, and by OrderService whenever the order association
// changes, since the cached payload carries OrderIDs.
func (s *ProductService) InvalidateProduct(ctx context.Context, id int64) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, productCacheKey(id)); err != nil {
		s.Logger.WithError(err).WithField("product_id", id).Warn("product cache invalidation failed")
	}
}

func (s *ProductService) publish(ctx context.Context, eventType string, id int64) {
	if err := s.Events.Publish(ctx, events.New(eventType, "product", id)); err != nil {
		s.Logger.WithError(err).WithField("event", eventType).Warn("event publish failed")
	}
}
