// Package csvexport dumps the simulation tables to CSV files so runs can be
// inspected with spreadsheet tooling or loaded into analytics pipelines.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/bundlerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/customerrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/driverrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/orderrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/storerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exporter writes every simulation table to a CSV file in the target
// directory. Files are overwritten on each run.
type Exporter struct {
	db  *gorm.DB
	dir string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(db *gorm.DB, dir string) (*Exporter, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	return &Exporter{db: db, dir: dir}, nil
}

// ExportAll dumps all six tables and returns the written file paths.
func (e *Exporter) ExportAll(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	exports := []func(context.Context) (string, error){
		e.exportCustomers,
		e.exportDrivers,
		e.exportStores,
		e.exportOrders,
		e.exportBundles,
		e.exportStops,
	}

	paths := make([]string, 0, len(exports))
	for _, export := range exports {
		path, err := export(ctx)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (e *Exporter) exportCustomers(ctx context.Context) (string, error) {
	var dtos []customerrepo.CustomerDTO
	if err := e.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load customers: %w", err)
	}

	header := []string{"id", "name", "email", "phone", "address", "lat", "lon", "is_premium", "created_at"}
	return e.writeFile("customers.csv", header, len(dtos), func(i int) []string {
		c := dtos[i]
		return []string{
			c.ID.String(), c.Name, c.Email, c.Phone, c.Address,
			formatFloat(c.Lat), formatFloat(c.Lon),
			strconv.FormatBool(c.IsPremium), formatTime(c.CreatedAt),
		}
	})
}

func (e *Exporter) exportDrivers(ctx context.Context) (string, error) {
	var dtos []driverrepo.DriverDTO
	if err := e.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load drivers: %w", err)
	}

	header := []string{"id", "name", "phone", "license_plate", "vehicle_type", "rating", "lat", "lon", "is_active", "created_at"}
	return e.writeFile("drivers.csv", header, len(dtos), func(i int) []string {
		d := dtos[i]
		return []string{
			d.ID.String(), d.Name, d.Phone, d.LicensePlate, d.VehicleType,
			formatFloat(d.Rating), formatFloat(d.Lat), formatFloat(d.Lon),
			strconv.FormatBool(d.IsActive), formatTime(d.CreatedAt),
		}
	})
}

func (e *Exporter) exportStores(ctx context.Context) (string, error) {
	var dtos []storerepo.StoreDTO
	if err := e.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load stores: %w", err)
	}

	header := []string{"id", "name", "address", "lat", "lon", "open_hour", "close_hour", "is_active", "created_at"}
	return e.writeFile("stores.csv", header, len(dtos), func(i int) []string {
		s := dtos[i]
		return []string{
			s.ID.String(), s.Name, s.Address,
			formatFloat(s.Lat), formatFloat(s.Lon),
			strconv.Itoa(s.OpenHour), strconv.Itoa(s.CloseHour),
			strconv.FormatBool(s.IsActive), formatTime(s.CreatedAt),
		}
	})
}

func (e *Exporter) exportOrders(ctx context.Context) (string, error) {
	var dtos []orderrepo.OrderDTO
	if err := e.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load orders: %w", err)
	}

	header := []string{
		"id", "customer_id", "store_id", "delivery_lat", "delivery_lon",
		"item_count", "subtotal", "tax", "delivery_fee", "tip", "total",
		"delivery_notes", "status", "created_at", "confirmed_at", "picked_at",
		"picking_completed_at", "delivered_at",
	}
	return e.writeFile("orders.csv", header, len(dtos), func(i int) []string {
		o := dtos[i]
		return []string{
			o.ID.String(), o.CustomerID.String(), o.StoreID.String(),
			formatFloat(o.Delivery.Lat), formatFloat(o.Delivery.Lon),
			strconv.Itoa(o.ItemCount),
			formatFloat(o.Subtotal), formatFloat(o.Tax),
			formatFloat(o.DeliveryFee), formatFloat(o.Tip), formatFloat(o.Total),
			o.DeliveryNotes, o.Status, formatTime(o.CreatedAt),
			formatTimePtr(o.ConfirmedAt), formatTimePtr(o.PickedAt),
			formatTimePtr(o.PickingCompletedAt), formatTimePtr(o.DeliveredAt),
		}
	})
}

func (e *Exporter) exportBundles(ctx context.Context) (string, error) {
	var dtos []bundlerepo.BundleDTO
	if err := e.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load bundles: %w", err)
	}

	header := []string{
		"id", "store_id", "driver_id", "total_distance_km",
		"estimated_duration_min", "total_value", "centroid_lat",
		"centroid_lon", "status", "created_at",
	}
	return e.writeFile("bundles.csv", header, len(dtos), func(i int) []string {
		b := dtos[i]
		return []string{
			b.ID.String(), b.StoreID.String(), formatUUIDPtr(b.DriverID),
			formatFloat(b.TotalDistanceKm), formatFloat(b.EstimatedDurationMin),
			formatFloat(b.TotalValue),
			formatFloat(b.CentroidLat), formatFloat(b.CentroidLon),
			b.Status, formatTime(b.CreatedAt),
		}
	})
}

func (e *Exporter) exportStops(ctx context.Context) (string, error) {
	var dtos []bundlerepo.StopDTO
	if err := e.db.WithContext(ctx).Order("bundle_id, sequence").Find(&dtos).Error; err != nil {
		return "", fmt.Errorf("load bundle stops: %w", err)
	}

	header := []string{"bundle_id", "sequence", "order_id", "lat", "lon"}
	return e.writeFile("bundle_stops.csv", header, len(dtos), func(i int) []string {
		s := dtos[i]
		return []string{
			s.BundleID.String(), strconv.Itoa(s.Sequence), s.OrderID.String(),
			formatFloat(s.Lat), formatFloat(s.Lon),
		}
	})
}

// writeFile streams header plus rowCount records produced by row into name.
func (e *Exporter) writeFile(name string, header []string, rowCount int, row func(i int) []string) (string, error) {
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write %s header: %w", name, err)
	}

	for i := range rowCount {
		if err := w.Write(row(i)); err != nil {
			return "", fmt.Errorf("write %s row: %w", name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", name, err)
	}

	return path, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatUUIDPtr(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
