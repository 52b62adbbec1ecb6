// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	LicensePlate string    `gorm:"type:varchar(10)"`
	VehicleType  string    `gorm:"type:varchar(20)"`
	Rating       float64
	Lat          float64   `gorm:"type:double precision"`
	Lon          float64   `gorm:"type:double precision"`
	IsActive     bool      `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           d.ID().Bytes(),
		Name:         d.Name(),
		Phone:        d.Phone(),
		LicensePlate: d.LicensePlate(),
		VehicleType:  d.Vehicle().String(),
		Rating:       d.Rating(),
		Lat:          d.Location().Latitude(),
		Lon:          d.Location().Longitude(),
		IsActive:     d.IsActive(),
		CreatedAt:    d.CreatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := driver.VehicleFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(id, dto.Name, dto.Phone, vehicle, dto.Rating, location, dto.IsActive, dto.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.SetLicensePlate(dto.LicensePlate)

	return d, nil
}
