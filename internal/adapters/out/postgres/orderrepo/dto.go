// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and placement time.
type OrderDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID   `gorm:"type:uuid;index"`
	StoreID            uuid.UUID   `gorm:"type:uuid;index"`
	Delivery           GeoPointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	ItemCount          int
	Subtotal           float64
	Tax                float64
	DeliveryFee        float64
	Tip                float64
	Total              float64
	DeliveryNotes      string
	Status             string    `gorm:"type:varchar(20);index"`
	CreatedAt          time.Time `gorm:"index"`
	ConfirmedAt        *time.Time
	PickedAt           *time.Time
	PickingCompletedAt *time.Time
	DeliveredAt        *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates within the order table.
// Stores the destination coordinates for order delivery.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lon float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Statuses are stored under their wire names, lifecycle timestamps as nullable
// columns.
func fromDomain(o *order.Order) OrderDTO {
	charges := o.Charges()
	return OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		StoreID:    o.StoreID().Bytes(),
		Delivery: GeoPointDTO{
			Lat: o.DeliveryLocation().Latitude(),
			Lon: o.DeliveryLocation().Longitude(),
		},
		ItemCount:          o.ItemCount(),
		Subtotal:           charges.Subtotal(),
		Tax:                charges.Tax(),
		DeliveryFee:        charges.DeliveryFee(),
		Tip:                charges.Tip(),
		Total:              charges.Total(),
		DeliveryNotes:      o.DeliveryNotes(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		ConfirmedAt:        o.ConfirmedAt(),
		PickedAt:           o.PickedAt(),
		PickingCompletedAt: o.PickingCompletedAt(),
		DeliveredAt:        o.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and lifecycle
// timestamps using RestoreOrder, which re-validates the chronology.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Delivery.Lat, dto.Delivery.Lon)
	if err != nil {
		return nil, err
	}

	charges, err := order.NewCharges(dto.Subtotal, dto.Tax, dto.DeliveryFee, dto.Tip)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	o, err := order.RestoreOrder(
		id, customerID, storeID, location, dto.ItemCount, charges, status,
		dto.CreatedAt, dto.ConfirmedAt, dto.PickedAt, dto.PickingCompletedAt, dto.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	o.SetDeliveryNotes(dto.DeliveryNotes)

	return o, nil
}
