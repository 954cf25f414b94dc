package usecases

import (
	"context"
	"testing"
	"time"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/logger"
)

type mockDeviceRepository struct {
	SaveFunc        func(ctx context.Context, d *device.Device) error
	ApplyUpdateFunc func(ctx context.Context, sid string, u device.Update) error
	GetBySIDFunc    func(ctx context.Context, sid string) (*device.Device, error)
	ListFunc        func(ctx context.Context) ([]*device.Device, error)
	DeleteFunc      func(ctx context.Context, sid string) error
}

func (m *mockDeviceRepository) Save(ctx context.Context, d *device.Device) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDeviceRepository) ApplyUpdate(ctx context.Context, sid string, u device.Update) error {
	if m.ApplyUpdateFunc != nil {
		return m.ApplyUpdateFunc(ctx, sid, u)
	}
	return nil
}

func (m *mockDeviceRepository) GetBySID(ctx context.Context, sid string) (*device.Device, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDeviceRepository) List(ctx context.Context) ([]*device.Device, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDeviceRepository) Delete(ctx context.Context, sid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sid)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestDevice(t *testing.T, sid string) *device.Device {
	t.Helper()
	now := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	d, err := device.ReconstructDevice(1, sid, "Front desk laptop", "ThinkPad X1", "Lenovo", now, now)
	if err != nil {
		t.Fatalf("ReconstructDevice() error = %v", err)
	}
	return d
}
