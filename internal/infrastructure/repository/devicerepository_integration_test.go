package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
)

func createTestDevice(t *testing.T, name string) *device.Device {
	t.Helper()
	d, err := device.NewDevice(name, "ThinkPad X1", "Lenovo")
	require.NoError(t, err)
	return d
}

func TestDeviceRepository_SaveAndGet(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()

	d := createTestDevice(t, "Front desk laptop")
	require.NoError(t, repo.Save(ctx, d))
	assert.NotZero(t, d.InternalID())

	found, err := repo.GetBySID(ctx, d.SID())
	require.NoError(t, err)
	assert.Equal(t, d.SID(), found.SID())
	assert.Equal(t, "Front desk laptop", found.Name())
	assert.Equal(t, "ThinkPad X1", found.Model())
	assert.Equal(t, "Lenovo", found.Manufacturer())

	_, err = repo.GetBySID(ctx, "dev_missing00000")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeviceRepository_List(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestDevice(t, "Laptop A")))
	require.NoError(t, repo.Save(ctx, createTestDevice(t, "Laptop B")))

	devices, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestDeviceRepository_ApplyUpdate(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()

	d := createTestDevice(t, "Front desk laptop")
	require.NoError(t, repo.Save(ctx, d))

	name := "Back office laptop"
	require.NoError(t, repo.ApplyUpdate(ctx, d.SID(), device.Update{Name: &name}))

	found, err := repo.GetBySID(ctx, d.SID())
	require.NoError(t, err)
	assert.Equal(t, name, found.Name())
	assert.Equal(t, "ThinkPad X1", found.Model())

	err = repo.ApplyUpdate(ctx, "dev_missing00000", device.Update{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeviceRepository_Delete(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()

	d := createTestDevice(t, "Front desk laptop")
	require.NoError(t, repo.Save(ctx, d))

	require.NoError(t, repo.Delete(ctx, d.SID()))

	_, err := repo.GetBySID(ctx, d.SID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, d.SID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
