package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"autorent/internal/domain/catalog"
	"autorent/internal/domain/shared/money"
)

// Catalog repositories back the read-only reference data when the service
// runs against a shared database instead of local fixtures.

type CarRepository struct {
	col *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{col: db.Collection("catalog_cars")}
}

func (r *CarRepository) ByID(ctx context.Context, id catalog.CarID) (*catalog.Car, error) {
	var doc carDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("mongo: car %q: %w", id, catalog.ErrNotFound)
		}
		return nil, err
	}
	car := doc.toDomain()
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context) ([]*catalog.Car, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*catalog.Car
	for cur.Next(ctx) {
		var doc carDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		car := doc.toDomain()
		out = append(out, &car)
	}
	return out, cur.Err()
}

type carDocument struct {
	ID               string `bson:"_id"`
	Name             string `bson:"name"`
	DailyRateCents   int64  `bson:"daily_rate_cents"`
	WeeklyRateCents  int64  `bson:"weekly_rate_cents"`
	MonthlyRateCents int64  `bson:"monthly_rate_cents"`
	DepositCents     int64  `bson:"deposit_cents"`
}

func (d carDocument) toDomain() catalog.Car {
	return catalog.Car{
		ID:          catalog.CarID(d.ID),
		Name:        d.Name,
		DailyRate:   money.FromCents(d.DailyRateCents),
		WeeklyRate:  money.FromCents(d.WeeklyRateCents),
		MonthlyRate: money.FromCents(d.MonthlyRateCents),
		Deposit:     money.FromCents(d.DepositCents),
	}
}

type LocationRepository struct {
	col *mongo.Collection
}

func NewLocationRepository(db *mongo.Database) *LocationRepository {
	return &LocationRepository{col: db.Collection("catalog_locations")}
}

func (r *LocationRepository) ByID(ctx context.Context, id catalog.LocationID) (*catalog.Location, error) {
	var doc locationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("mongo: location %q: %w", id, catalog.ErrNotFound)
		}
		return nil, err
	}
	loc := doc.toDomain()
	return &loc, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*catalog.Location, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*catalog.Location
	for cur.Next(ctx) {
		var doc locationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		loc := doc.toDomain()
		out = append(out, &loc)
	}
	return out, cur.Err()
}

type locationDocument struct {
	ID               string `bson:"_id"`
	Name             string `bson:"name"`
	ExtraChargeCents int64  `bson:"extra_charge_cents"`
}

func (d locationDocument) toDomain() catalog.Location {
	return catalog.Location{
		ID:          catalog.LocationID(d.ID),
		Name:        d.Name,
		ExtraCharge: money.FromCents(d.ExtraChargeCents),
	}
}

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection("catalog_services")}
}

func (r *ServiceRepository) ByID(ctx context.Context, id catalog.ServiceID) (*catalog.AdditionalService, error) {
	var doc serviceDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("mongo: service %q: %w", id, catalog.ErrNotFound)
		}
		return nil, err
	}
	svc := doc.toDomain()
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*catalog.AdditionalService, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*catalog.AdditionalService
	for cur.Next(ctx) {
		var doc serviceDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		svc := doc.toDomain()
		out = append(out, &svc)
	}
	return out, cur.Err()
}

type serviceDocument struct {
	ID               string `bson:"_id"`
	Name             string `bson:"name"`
	PricePerDayCents int64  `bson:"price_per_day_cents"`
}

func (d serviceDocument) toDomain() catalog.AdditionalService {
	return catalog.AdditionalService{
		ID:          catalog.ServiceID(d.ID),
		Name:        d.Name,
		PricePerDay: money.FromCents(d.PricePerDayCents),
	}
}

var (
	_ catalog.CarRepository      = (*CarRepository)(nil)
	_ catalog.LocationRepository = (*LocationRepository)(nil)
	_ catalog.ServiceRepository  = (*ServiceRepository)(nil)
)
