package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"autorent/internal/domain/catalog"
)

// CarRepository is an in-memory reference-data store. The catalog is read-only
// at request time; Save exists for fixture loading and tests.
type CarRepository struct {
	mu    sync.RWMutex
	items map[catalog.CarID]*catalog.Car
}

func NewCarRepository() *CarRepository {
	return &CarRepository{items: make(map[catalog.CarID]*catalog.Car)}
}

func (r *CarRepository) ByID(ctx context.Context, id catalog.CarID) (*catalog.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	car, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("memory: car %q: %w", id, catalog.ErrNotFound)
	}
	clone := *car
	return &clone, nil
}

func (r *CarRepository) List(ctx context.Context) ([]*catalog.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*catalog.Car, 0, len(r.items))
	for _, car := range r.items {
		clone := *car
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CarRepository) Save(ctx context.Context, car *catalog.Car) error {
	if err := car.ValidateRates(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *car
	r.items[car.ID] = &clone
	return nil
}

// LocationRepository stores pickup/drop-off points.
type LocationRepository struct {
	mu    sync.RWMutex
	items map[catalog.LocationID]*catalog.Location
}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{items: make(map[catalog.LocationID]*catalog.Location)}
}

func (r *LocationRepository) ByID(ctx context.Context, id catalog.LocationID) (*catalog.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("memory: location %q: %w", id, catalog.ErrNotFound)
	}
	clone := *loc
	return &clone, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*catalog.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*catalog.Location, 0, len(r.items))
	for _, loc := range r.items {
		clone := *loc
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LocationRepository) Save(ctx context.Context, loc *catalog.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *loc
	r.items[loc.ID] = &clone
	return nil
}

// ServiceRepository stores add-on services.
type ServiceRepository struct {
	mu    sync.RWMutex
	items map[catalog.ServiceID]*catalog.AdditionalService
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{items: make(map[catalog.ServiceID]*catalog.AdditionalService)}
}

func (r *ServiceRepository) ByID(ctx context.Context, id catalog.ServiceID) (*catalog.AdditionalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("memory: service %q: %w", id, catalog.ErrNotFound)
	}
	clone := *svc
	return &clone, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*catalog.AdditionalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*catalog.AdditionalService, 0, len(r.items))
	for _, svc := range r.items {
		clone := *svc
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ServiceRepository) Save(ctx context.Context, svc *catalog.AdditionalService) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *svc
	r.items[svc.ID] = &clone
	return nil
}

var (
	_ catalog.CarRepository      = (*CarRepository)(nil)
	_ catalog.LocationRepository = (*LocationRepository)(nil)
	_ catalog.ServiceRepository  = (*ServiceRepository)(nil)
)
