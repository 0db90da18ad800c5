package adminservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/service/adminservice"
)

type MockRoles struct{ mock.Mock }

func (m *MockRoles) HasRole(ctx context.Context, userID string, role domain.UserRole) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

type MockSettings struct{ mock.Mock }

func (m *MockSettings) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PlatformSetting), args.Error(1)
}

func (m *MockSettings) Update(ctx context.Context, key domain.SettingKey, raw, actor string) error {
	return m.Called(ctx, key, raw, actor).Error(0)
}

func (m *MockSettings) Toggle(ctx context.Context, key domain.SettingKey, actor string) (bool, error) {
	args := m.Called(ctx, key, actor)
	return args.Bool(0), args.Error(1)
}

type MockStats struct{ mock.Mock }

func (m *MockStats) GetStats(ctx context.Context) (domain.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func newService() (*adminservice.Service, *MockRoles, *MockSettings, *MockStats) {
	roles, settings, stats := new(MockRoles), new(MockSettings), new(MockStats)
	return adminservice.NewService(roles, settings, stats, logger.NewNopLogger()), roles, settings, stats
}

func TestAuthorize(t *testing.T) {
	svc, roles, _, _ := newService()
	roles.On("HasRole", mock.Anything, "admin-1", domain.RoleAdmin).Return(true, nil)
	roles.On("HasRole", mock.Anything, "user-1", domain.RoleAdmin).Return(false, nil)

	assert.NoError(t, svc.Authorize(context.Background(), "admin-1"))
	assert.IsType(t, &apperror.ForbiddenError{}, svc.Authorize(context.Background(), "user-1"))
	assert.IsType(t, &apperror.UnauthorizedError{}, svc.Authorize(context.Background(), ""))
}

func TestEveryOperationRechecksRole(t *testing.T) {
	svc, roles, settings, stats := newService()
	ctx := context.Background()

	roles.On("HasRole", mock.Anything, "admin-1", domain.RoleAdmin).Return(true, nil)
	settings.On("List", mock.Anything).Return([]domain.PlatformSetting{{Key: domain.SettingChatEnabled, Value: "true"}}, nil)
	settings.On("Update", mock.Anything, domain.SettingMaxColetasPerDay, "20", "admin-1").Return(nil)
	settings.On("Toggle", mock.Anything, domain.SettingChatEnabled, "admin-1").Return(false, nil)
	stats.On("GetStats", mock.Anything).Return(domain.Stats{TotalUsers: 3}, nil)

	list, err := svc.ListSettings(ctx, "admin-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.UpdateSetting(ctx, "admin-1", domain.SettingMaxColetasPerDay, "20"))

	enabled, err := svc.ToggleFeature(ctx, "admin-1", domain.SettingChatEnabled)
	require.NoError(t, err)
	assert.False(t, enabled)

	st, err := svc.GetStats(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.TotalUsers)

	roles.AssertNumberOfCalls(t, "HasRole", 4)
}

func TestRevokedRoleIsSeenOnNextCall(t *testing.T) {
	svc, roles, _, stats := newService()
	ctx := context.Background()

	roles.On("HasRole", mock.Anything, "admin-1", domain.RoleAdmin).Return(true, nil).Once()
	roles.On("HasRole", mock.Anything, "admin-1", domain.RoleAdmin).Return(false, nil).Once()
	stats.On("GetStats", mock.Anything).Return(domain.Stats{}, nil).Once()

	_, err := svc.GetStats(ctx, "admin-1")
	require.NoError(t, err)

	_, err = svc.GetStats(ctx, "admin-1")
	assert.IsType(t, &apperror.ForbiddenError{}, err)
	stats.AssertNumberOfCalls(t, "GetStats", 1)
}

func TestNonAdminNeverReachesSettings(t *testing.T) {
	svc, roles, settings, _ := newService()
	roles.On("HasRole", mock.Anything, "user-1", domain.RoleAdmin).Return(false, nil)

	_, err := svc.ToggleFeature(context.Background(), "user-1", domain.SettingChatEnabled)

	assert.IsType(t, &apperror.ForbiddenError{}, err)
	settings.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}
