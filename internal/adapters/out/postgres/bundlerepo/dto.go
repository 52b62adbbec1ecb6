// Package bundlerepo provides data transfer objects and mapping functions for bundle persistence.
// Bundles span two tables: the bundle row itself and one row per delivery stop.
package bundlerepo

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BundleDTO represents the database structure for persisting bundle aggregates.
type BundleDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID              uuid.UUID  `gorm:"type:uuid;index"`
	DriverID             *uuid.UUID `gorm:"type:uuid;index"`
	TotalDistanceKm      float64
	EstimatedDurationMin float64
	TotalValue           float64
	CentroidLat          float64
	CentroidLon          float64
	Status               string    `gorm:"type:varchar(20);index"`
	CreatedAt            time.Time `gorm:"index"`
}

// TableName specifies the database table name for bundle entities.
func (BundleDTO) TableName() string {
	return "bundles"
}

// StopDTO represents a single delivery stop of a bundle. Stops are written
// together with their bundle and never updated afterwards.
type StopDTO struct {
	BundleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence int       `gorm:"primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Lat      float64   `gorm:"type:double precision"`
	Lon      float64   `gorm:"type:double precision"`
}

// TableName specifies the database table name for bundle stops.
func (StopDTO) TableName() string {
	return "bundle_stops"
}

// fromDomain converts a bundle aggregate to its database rows.
func fromDomain(b *bundle.Bundle) (BundleDTO, []StopDTO) {
	var driverID *uuid.UUID
	if driver := b.Driver(); driver != nil {
		raw := driver.Bytes()
		driverID = &raw
	}

	dto := BundleDTO{
		ID:                   b.ID().Bytes(),
		StoreID:              b.StoreID().Bytes(),
		DriverID:             driverID,
		TotalDistanceKm:      b.TotalDistanceKm(),
		EstimatedDurationMin: b.EstimatedDurationMin(),
		TotalValue:           b.TotalValue(),
		CentroidLat:          b.Centroid().Latitude(),
		CentroidLon:          b.Centroid().Longitude(),
		Status:               b.Status().String(),
		CreatedAt:            b.CreatedAt(),
	}

	stops := make([]StopDTO, 0, b.StopCount())
	for _, stop := range b.Stops() {
		stops = append(stops, StopDTO{
			BundleID: dto.ID,
			Sequence: stop.Sequence(),
			OrderID:  stop.OrderID().Bytes(),
			Lat:      stop.Location().Latitude(),
			Lon:      stop.Location().Longitude(),
		})
	}

	return dto, stops
}

// toDomain converts database rows back to a bundle aggregate. The stop rows
// must already be ordered by sequence; the centroid is recomputed from them.
func toDomain(dto BundleDTO, stopRows []StopDTO) (*bundle.Bundle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.DriverID[:])
		if err != nil {
			return nil, err
		}
		driverID = &parsed
	}

	status, err := bundle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]bundle.Stop, 0, len(stopRows))
	for _, row := range stopRows {
		orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
		if err != nil {
			return nil, err
		}
		location, err := kernel.NewGeoPoint(row.Lat, row.Lon)
		if err != nil {
			return nil, err
		}
		stop, err := bundle.NewStop(orderID, location, row.Sequence)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return bundle.RestoreBundle(
		id, storeID, driverID, stops,
		dto.TotalDistanceKm, dto.EstimatedDurationMin, dto.TotalValue,
		status, dto.CreatedAt,
	)
}
