package catalogview

import (
	"context"

	"autorent/internal/app/dto"
	"autorent/internal/app/queries"
	"autorent/internal/domain/catalog"
)

const listCatalogKey = "catalog.list"

// ListCatalogQuery fetches the read-only reference data the booking form
// needs: cars, locations and add-on services.
type ListCatalogQuery struct{}

func (q ListCatalogQuery) Key() string { return listCatalogKey }

type ListCatalogResult struct {
	Cars      []dto.Car               `json:"cars"`
	Locations []dto.Location          `json:"locations"`
	Services  []dto.AdditionalService `json:"services"`
}

type ListCatalogHandler struct {
	Cars      catalog.CarRepository
	Locations catalog.LocationRepository
	Services  catalog.ServiceRepository
}

func (h *ListCatalogHandler) Handle(ctx context.Context, q ListCatalogQuery) (*ListCatalogResult, error) {
	cars, err := h.Cars.List(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := h.Locations.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := h.Services.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListCatalogResult{
		Cars:      make([]dto.Car, 0, len(cars)),
		Locations: make([]dto.Location, 0, len(locations)),
		Services:  make([]dto.AdditionalService, 0, len(services)),
	}
	for _, car := range cars {
		result.Cars = append(result.Cars, dto.Car{
			ID:               string(car.ID),
			Name:             car.Name,
			DailyRateCents:   car.DailyRate.Cents(),
			WeeklyRateCents:  car.WeeklyRate.Cents(),
			MonthlyRateCents: car.MonthlyRate.Cents(),
			DepositCents:     car.Deposit.Cents(),
		})
	}
	for _, loc := range locations {
		result.Locations = append(result.Locations, dto.Location{
			ID:               string(loc.ID),
			Name:             loc.Name,
			ExtraChargeCents: loc.ExtraCharge.Cents(),
		})
	}
	for _, svc := range services {
		result.Services = append(result.Services, dto.AdditionalService{
			ID:               string(svc.ID),
			Name:             svc.Name,
			PricePerDayCents: svc.PricePerDay.Cents(),
		})
	}
	return result, nil
}

var _ queries.Handler[ListCatalogQuery, *ListCatalogResult] = (*ListCatalogHandler)(nil)
