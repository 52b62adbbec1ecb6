// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Address   string
	Lat       float64 `gorm:"type:double precision"`
	Lon       float64 `gorm:"type:double precision"`
	IsPremium bool
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		Lat:       c.Location().Latitude(),
		Lon:       c.Location().Longitude(),
		IsPremium: c.IsPremium(),
		CreatedAt: c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address, location,
		dto.IsPremium, dto.CreatedAt)
}
