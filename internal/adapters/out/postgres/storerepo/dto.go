// Package storerepo provides data transfer objects and mapping functions for store persistence.
package storerepo

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
type StoreDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Lat       float64 `gorm:"type:double precision"`
	Lon       float64 `gorm:"type:double precision"`
	OpenHour  int
	CloseHour int
	IsActive  bool `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store domain aggregate to its database representation.
func fromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:        s.ID().Bytes(),
		Name:      s.Name(),
		Address:   s.Address(),
		Lat:       s.Location().Latitude(),
		Lon:       s.Location().Longitude(),
		OpenHour:  s.Hours().OpenHour(),
		CloseHour: s.Hours().CloseHour(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
	}
}

// toDomain converts a database DTO to a store domain aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	hours, err := store.NewHours(dto.OpenHour, dto.CloseHour)
	if err != nil {
		return nil, err
	}

	return store.NewStore(id, dto.Name, dto.Address, location, hours, dto.IsActive, dto.CreatedAt)
}
