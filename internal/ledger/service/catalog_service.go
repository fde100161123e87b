package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const itemsCacheKey = "catalog:items"

// FuelTypeOption is a fuel type that can still be registered.
type FuelTypeOption struct {
	Type      entity.FuelType
	Label     string
	BasePrice decimal.Decimal
}

// CatalogItem is one selectable entry for buy and sell operations.
type CatalogItem struct {
	Ref   entity.ItemRef
	Label string
	Price decimal.Decimal
}

// DefaultService is a service created by SeedDefaultServices.
type DefaultService struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// DefaultServices is the standard service menu of the station.
var DefaultServices = []DefaultService{
	{Name: "Troca de Óleo", Description: "Troca de óleo do motor e filtro", Price: decimal.RequireFromString("90.00")},
	{Name: "Balanceamento", Description: "Balanceamento das quatro rodas", Price: decimal.RequireFromString("50.00")},
	{Name: "Alinhamento", Description: "Alinhamento da direção", Price: decimal.RequireFromString("80.00")},
	{Name: "Revisão Preventiva", Description: "Revisão geral do veículo", Price: decimal.RequireFromString("150.00")},
	{Name: "Troca de Pneus", Description: "Montagem e troca de pneus", Price: decimal.RequireFromString("40.00")},
	{Name: "Lavagem Completa", Description: "Lavagem externa e interna", Price: decimal.RequireFromString("65.00")},
}

// CatalogService manages fuel stocks, services and their prices.
type CatalogService interface {
	CreateFuelStock(ctx context.Context, fuelType entity.FuelType, quantity, price decimal.Decimal) (*entity.FuelStock, error)
	AvailableFuelTypes(ctx context.Context) ([]FuelTypeOption, error)
	ListFuelStocks(ctx context.Context) ([]entity.FuelStock, error)
	GetFuelStock(ctx context.Context, id uint) (*entity.FuelStock, error)
	DeleteFuelStock(ctx context.Context, id uint) error
	CreateService(ctx context.Context, name string, description *string, price decimal.Decimal) (*entity.Service, error)
	ListServices(ctx context.Context) ([]entity.Service, error)
	DeleteService(ctx context.Context, id uint) error
	SeedDefaultServices(ctx context.Context) (int, error)
	UpdatePrice(ctx context.Context, ref entity.ItemRef, price decimal.Decimal) (*CatalogItem, error)
	ListItems(ctx context.Context) ([]CatalogItem, error)
}

// NewCatalogService creates a new catalog service. Item listings are cached for itemTTL.
func NewCatalogService(store *repository.Store, itemTTL time.Duration, log *logger.Logger) CatalogService {
	if itemTTL <= 0 {
		itemTTL = time.Minute
	}
	return &catalogService{
		store:  store,
		cache:  cache.New(itemTTL, 2*itemTTL),
		logger: log,
	}
}

type catalogService struct {
	store  *repository.Store
	cache  *cache.Cache
	logger *logger.Logger
}

// CreateFuelStock registers a fuel type. Each type can be registered once.
func (s *catalogService) CreateFuelStock(ctx context.Context, fuelType entity.FuelType, quantity, price decimal.Decimal) (*entity.FuelStock, error) {
	if !fuelType.Valid() {
		return nil, fmt.Errorf("%w: unknown fuel type %q", ErrInvalidInput, fuelType)
	}
	if err := validateAmount("quantity", quantity); err != nil {
		return nil, err
	}
	if err := validateAmount("price", price); err != nil {
		return nil, err
	}

	if _, err := s.store.FuelStocks.FindByType(ctx, fuelType); err == nil {
		return nil, fmt.Errorf("fuel type %s already registered: %w", fuelType, ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	stock := &entity.FuelStock{
		FuelType:      fuelType,
		Quantity:      quantity,
		PricePerLiter: price,
	}
	if err := s.store.FuelStocks.Create(ctx, stock); err != nil {
		s.logger.Error("Failed to create fuel stock", logger.ErrorField(err), logger.StringField("fuel_type", string(fuelType)))
		return nil, conflict("fuel type "+string(fuelType), err)
	}

	s.invalidate()
	s.logger.Info("Fuel stock created", logger.Field("fuel_stock_id", stock.ID), logger.StringField("fuel_type", string(fuelType)))
	return stock, nil
}

// AvailableFuelTypes lists the fuel types not yet registered with their suggested price.
func (s *catalogService) AvailableFuelTypes(ctx context.Context) ([]FuelTypeOption, error) {
	existing, err := s.store.FuelStocks.ExistingTypes(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[entity.FuelType]bool, len(existing))
	for _, t := range existing {
		taken[t] = true
	}

	options := make([]FuelTypeOption, 0, len(entity.FuelTypes))
	for _, t := range entity.FuelTypes {
		if taken[t] {
			continue
		}
		options = append(options, FuelTypeOption{Type: t, Label: t.Label(), BasePrice: t.BasePrice()})
	}
	return options, nil
}

func (s *catalogService) ListFuelStocks(ctx context.Context) ([]entity.FuelStock, error) {
	return s.store.FuelStocks.FindAll(ctx)
}

func (s *catalogService) GetFuelStock(ctx context.Context, id uint) (*entity.FuelStock, error) {
	stock, err := s.store.FuelStocks.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("fuel stock", id, err)
	}
	return stock, nil
}

// DeleteFuelStock removes a fuel stock that has no purchase or sale records.
func (s *catalogService) DeleteFuelStock(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.FuelStocks.FindByIDForUpdate(ctx, id); err != nil {
			return notFound("fuel stock", id, err)
		}
		count, err := tx.Records.CountByFuelStock(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("fuel stock %d has %d ledger records: %w", id, count, ErrConflict)
		}
		return notFound("fuel stock", id, tx.FuelStocks.Delete(ctx, id))
	})
	if err != nil {
		s.logger.Warn("Failed to delete fuel stock", logger.ErrorField(err), logger.Field("fuel_stock_id", id))
		return err
	}

	s.invalidate()
	s.logger.Info("Fuel stock deleted", logger.Field("fuel_stock_id", id))
	return nil
}

// CreateService registers a service. Names are unique ignoring case.
func (s *catalogService) CreateService(ctx context.Context, name string, description *string, price decimal.Decimal) (*entity.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > 120 {
		return nil, fmt.Errorf("%w: service name is longer than 120 characters", ErrInvalidInput)
	}
	if err := validateAmount("price", price); err != nil {
		return nil, err
	}

	if _, err := s.store.Services.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("service %q already exists: %w", name, ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if description != nil {
		trimmed := strings.TrimSpace(*description)
		if trimmed == "" {
			description = nil
		} else {
			description = &trimmed
		}
	}

	svc := &entity.Service{
		Name:        name,
		Description: description,
		UnitPrice:   price,
	}
	if err := s.store.Services.Create(ctx, svc); err != nil {
		s.logger.Error("Failed to create service", logger.ErrorField(err), logger.StringField("name", name))
		return nil, conflict("service "+name, err)
	}

	s.invalidate()
	s.logger.Info("Service created", logger.Field("service_id", svc.ID), logger.StringField("name", name))
	return svc, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]entity.Service, error) {
	return s.store.Services.FindAll(ctx)
}

// DeleteService removes a service that has no service records.
func (s *catalogService) DeleteService(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Services.FindByID(ctx, id); err != nil {
			return notFound("service", id, err)
		}
		count, err := tx.Records.CountByService(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("service %d has %d ledger records: %w", id, count, ErrConflict)
		}
		return notFound("service", id, tx.Services.Delete(ctx, id))
	})
	if err != nil {
		s.logger.Warn("Failed to delete service", logger.ErrorField(err), logger.Field("service_id", id))
		return err
	}

	s.invalidate()
	s.logger.Info("Service deleted", logger.Field("service_id", id))
	return nil
}

// SeedDefaultServices creates the missing entries of DefaultServices and
// returns how many were created. Existing names are left untouched.
func (s *catalogService) SeedDefaultServices(ctx context.Context) (int, error) {
	created := 0
	for _, def := range DefaultServices {
		_, err := s.store.Services.FindByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return created, err
		}

		description := def.Description
		svc := &entity.Service{Name: def.Name, Description: &description, UnitPrice: def.Price}
		if err := s.store.Services.Create(ctx, svc); err != nil {
			return created, conflict("service "+def.Name, err)
		}
		created++
	}

	if created > 0 {
		s.invalidate()
	}
	s.logger.Info("Default services seeded", logger.IntField("created", created))
	return created, nil
}

// UpdatePrice sets the current price of a fuel or service. Fuel prices are
// changed under the same row lock used by movements.
func (s *catalogService) UpdatePrice(ctx context.Context, ref entity.ItemRef, price decimal.Decimal) (*CatalogItem, error) {
	if err := validateAmount("price", price); err != nil {
		return nil, err
	}

	var item *CatalogItem
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		switch {
		case ref.IsFuel():
			stock, err := tx.FuelStocks.FindByIDForUpdate(ctx, ref.ID)
			if err != nil {
				return notFound("fuel stock", ref.ID, err)
			}
			if err := tx.FuelStocks.UpdatePrice(ctx, stock.ID, price); err != nil {
				return err
			}
			item = &CatalogItem{Ref: ref, Label: stock.Label(), Price: price}
		case ref.IsService():
			svc, err := tx.Services.FindByID(ctx, ref.ID)
			if err != nil {
				return notFound("service", ref.ID, err)
			}
			if err := tx.Services.UpdatePrice(ctx, svc.ID, price); err != nil {
				return err
			}
			item = &CatalogItem{Ref: ref, Label: svc.Name, Price: price}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidReference, ref.String())
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to update price", logger.ErrorField(err), logger.StringField("item", ref.String()))
		return nil, err
	}

	s.invalidate()
	s.logger.Info("Price updated", logger.StringField("item", ref.String()), logger.StringField("price", price.StringFixed(2)))
	return item, nil
}

// ListItems returns every fuel stock followed by every service.
func (s *catalogService) ListItems(ctx context.Context) ([]CatalogItem, error) {
	if cached, ok := s.cache.Get(itemsCacheKey); ok {
		return append([]CatalogItem(nil), cached.([]CatalogItem)...), nil
	}

	stocks, err := s.store.FuelStocks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.store.Services.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]CatalogItem, 0, len(stocks)+len(services))
	for _, stock := range stocks {
		items = append(items, CatalogItem{Ref: entity.FuelRef(stock.ID), Label: stock.Label(), Price: stock.PricePerLiter})
	}
	for _, svc := range services {
		items = append(items, CatalogItem{Ref: entity.ServiceRef(svc.ID), Label: svc.Name, Price: svc.UnitPrice})
	}

	s.cache.SetDefault(itemsCacheKey, append([]CatalogItem(nil), items...))
	return items, nil
}

func (s *catalogService) invalidate() {
	s.cache.Delete(itemsCacheKey)
}
