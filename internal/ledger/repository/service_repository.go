package repository

import (
	"context"
	"strings"

	"posto-ledger/internal/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceRepository defines the interface for service data operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uint) (*entity.Service, error)
	FindByName(ctx context.Context, name string) (*entity.Service, error)
	FindAll(ctx context.Context) ([]entity.Service, error)
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	Delete(ctx context.Context, id uint) error
}

// NewServiceRepository creates a new GORM-based service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

type serviceRepository struct {
	db *gorm.DB
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return translate(r.db.WithContext(ctx).Create(service).Error)
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*entity.Service, error) {
	var service entity.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

// FindByName looks a service up by name, ignoring case.
func (r *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

// FindAll retrieves all services ordered by name.
func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	if err := r.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&entity.Service{ID: id}).Update("unit_price", price)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Service{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
