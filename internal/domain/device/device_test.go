package device

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/shared/id"
)

func strPtr(s string) *string { return &s }

func TestNewDevice_Success(t *testing.T) {
	d, err := NewDevice("Front desk laptop", "ThinkPad X1", "Lenovo")

	require.NoError(t, err)
	assert.NoError(t, id.ValidatePrefix(d.SID(), id.PrefixDevice))
	assert.Equal(t, "Front desk laptop", d.Name())
	assert.Equal(t, "ThinkPad X1", d.Model())
	assert.Equal(t, "Lenovo", d.Manufacturer())
	assert.Equal(t, d.CreatedAt(), d.UpdatedAt())
}

func TestNewDevice_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		deviceName   string
		model        string
		manufacturer string
		wantMsg      string
	}{
		{"missing name", "", "X1", "Lenovo", "name is required"},
		{"name too long", strings.Repeat("x", 101), "X1", "Lenovo", "name exceeds maximum length"},
		{"missing model", "Laptop", "", "Lenovo", "model is required"},
		{"missing manufacturer", "Laptop", "X1", "", "manufacturer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDevice(tt.deviceName, tt.model, tt.manufacturer)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDevice_ApplyUpdate(t *testing.T) {
	d, err := NewDevice("Front desk laptop", "ThinkPad X1", "Lenovo")
	require.NoError(t, err)

	err = d.ApplyUpdate(Update{Name: strPtr("Back office laptop")})

	require.NoError(t, err)
	assert.Equal(t, "Back office laptop", d.Name())
	assert.Equal(t, "ThinkPad X1", d.Model())
	assert.Equal(t, "Lenovo", d.Manufacturer())
}

func TestDevice_ApplyUpdate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		update  Update
		wantMsg string
	}{
		{"empty name", Update{Name: strPtr("")}, "name must be between 1 and 100 characters"},
		{"name too long", Update{Name: strPtr(strings.Repeat("x", 101))}, "name must be between 1 and 100 characters"},
		{"empty model", Update{Model: strPtr("")}, "model cannot be empty"},
		{"empty manufacturer", Update{Manufacturer: strPtr("")}, "manufacturer cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDevice("Laptop", "X1", "Lenovo")
			require.NoError(t, err)

			err = d.ApplyUpdate(tt.update)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDevice_UpdateIsEmpty(t *testing.T) {
	assert.True(t, Update{}.IsEmpty())
	assert.False(t, Update{Name: strPtr("x")}.IsEmpty())
	assert.False(t, Update{Manufacturer: strPtr("x")}.IsEmpty())
}

func TestDevice_SetInternalID(t *testing.T) {
	d, err := NewDevice("Laptop", "X1", "Lenovo")
	require.NoError(t, err)

	require.NoError(t, d.SetInternalID(3))
	assert.Equal(t, uint(3), d.InternalID())
	assert.Error(t, d.SetInternalID(4))
}

func TestReconstructDevice_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructDevice(0, "dev_000000000abc", "Laptop", "X1", "Lenovo", now, now)
	assert.Error(t, err, "zero internal ID must be rejected")

	_, err = ReconstructDevice(1, "", "Laptop", "X1", "Lenovo", now, now)
	assert.Error(t, err, "empty ID must be rejected")
}
