package locations

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

func setupLocationsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:locations_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS location_rates (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  sub_locations TEXT,
  pre_order_delivery_rates TEXT,
  pre_order_service_rates TEXT,
  instant_delivery_rates TEXT,
  instant_service_rates TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestLocationsRepoRateArraysRoundTrip(t *testing.T) {
	db := setupLocationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.LocationRate{
		ID:           uuid.New(),
		Name:         "Campus",
		SubLocations: types.StringArray{"Block-A", "Block-B"},
		PreOrderDeliveryRates: types.DecimalArray{
			decimal.RequireFromString("15"), decimal.RequireFromString("18"),
		},
		PreOrderServiceRates: types.DecimalArray{
			decimal.RequireFromString("3"), decimal.RequireFromString("4"),
		},
		InstantDeliveryRates: types.DecimalArray{
			decimal.RequireFromString("25"), decimal.RequireFromString("28"),
		},
		InstantServiceRates: types.DecimalArray{
			decimal.RequireFromString("6"), decimal.RequireFromString("7"),
		},
	}).Error)

	row, err := repo.FindByName(ctx, "Campus")
	require.NoError(t, err)
	require.Equal(t, types.StringArray{"Block-A", "Block-B"}, row.SubLocations)

	rate, ok := row.PreOrderDeliveryRates.At(0)
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("15")))

	_, ok = row.PreOrderDeliveryRates.At(5)
	assert.False(t, ok)
}

func TestLocationsServiceNotFound(t *testing.T) {
	db := setupLocationsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	_, err = svc.GetByName(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestLocationsServiceListOrdersByName(t *testing.T) {
	db := setupLocationsTestDB(t)
	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	for _, name := range []string{"Uttara", "Campus"} {
		require.NoError(t, db.Create(&models.LocationRate{ID: uuid.New(), Name: name}).Error)
	}

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Campus", rows[0].Name)
	assert.Equal(t, "Uttara", rows[1].Name)
}
