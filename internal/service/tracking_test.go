package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedIDs = []string{"T002", "T003", "T004", "T005", "T006"}

// newTestTrackingService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestTrackingService(t *testing.T) (service.TrackingService, *mocks.MockTouristRepository, *mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTouristRepository(ctrl)
	publisherMock := mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewTrackingService(repoMock, publisherMock, logger, fixedIDs), repoMock, publisherMock
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, service.ErrNotFound)
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoginOrRegister_RegistersNewTourist(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByUsername(ctx, "alice").Return(nil, notFound("tourist alice")).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
			assert.Equal(t, "T100", tourist.TouristID)
			assert.Equal(t, "Alice", tourist.Name)
			assert.Equal(t, "pw1", tourist.Password)
			tourist.ID = 10
			return nil
		}).Times(1)
	repoMock.EXPECT().List(ctx).Return([]*models.Tourist{{ID: 10, Username: "alice"}}, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(nil).Times(1)

	// Действие
	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "alice",
		Password:  "pw1",
		Latitude:  ptr(22.0),
		Longitude: ptr(88.0),
		Name:      ptr("Alice"),
		TouristID: ptr("T100"),
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(10), tourist.ID)
	assert.Equal(t, 22.0, tourist.Latitude)
	assert.Equal(t, 88.0, tourist.Longitude)
}

func TestLoginOrRegister_MissingRegistrationFields(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "bob").Return(nil, notFound("tourist bob")).Times(2)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.LoginOrRegister(ctx, service.LoginInput{Username: "bob", Password: "pw", Name: ptr("Bob")})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.LoginOrRegister(ctx, service.LoginInput{Username: "bob", Password: "pw", Name: ptr(" "), TouristID: ptr("T7")})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestLoginOrRegister_ExistingUserUpdatesLocation(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	existing := &models.Tourist{ID: 5, TouristID: "T100", Username: "alice", Password: "pw1", Latitude: 22.0, Longitude: 88.0}

	repoMock.EXPECT().GetByUsername(ctx, "alice").Return(existing, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(&models.Tourist{ID: 5, TouristID: "T100", Username: "alice", Password: "pw1"}, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
			assert.Equal(t, 22.5, tourist.Latitude)
			assert.Equal(t, 88.4, tourist.Longitude)
			return nil
		}).Times(1)
	repoMock.EXPECT().List(ctx).Return([]*models.Tourist{existing}, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(nil).Times(1)

	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "alice",
		Password:  "pw1",
		Latitude:  ptr(22.5),
		Longitude: ptr(88.4),
	})

	require.NoError(t, err)
	assert.Equal(t, "T100", tourist.TouristID)
	assert.Equal(t, 22.5, tourist.Latitude)
}

func TestLoginOrRegister_WrongPassword(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	existing := &models.Tourist{ID: 5, TouristID: "T100", Username: "alice", Password: "pw1", Latitude: 22.0, Longitude: 88.0}
	repoMock.EXPECT().GetByUsername(ctx, "alice").Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "alice",
		Password:  "wrong",
		Latitude:  ptr(1.0),
		Longitude: ptr(1.0),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.Nil(t, tourist)
	assert.Equal(t, 22.0, existing.Latitude)
	assert.Equal(t, 88.0, existing.Longitude)
}

func TestLoginOrRegister_FixedTouristKeepsPosition(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	existing := &models.Tourist{ID: 2, TouristID: "T002", Username: "aritra123", Password: "ari123", Latitude: 22.4865, Longitude: 88.3136}
	repoMock.EXPECT().GetByUsername(ctx, "aritra123").Return(existing, nil).Times(1)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "aritra123",
		Password:  "ari123",
		Latitude:  ptr(10.0),
		Longitude: ptr(10.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 22.4865, tourist.Latitude)
	assert.Equal(t, 88.3136, tourist.Longitude)
}

func TestLoginOrRegister_EmptyFixedSetMovesDemoTourist(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTouristRepository(ctrl)
	publisherMock := mocks.NewMockPublisher(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewTrackingService(repoMock, publisherMock, logger, nil)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "aritra123").
		Return(&models.Tourist{ID: 2, TouristID: "T002", Username: "aritra123", Password: "ari123"}, nil)
	repoMock.EXPECT().GetByID(ctx, int64(2)).
		Return(&models.Tourist{ID: 2, TouristID: "T002", Username: "aritra123", Password: "ari123"}, nil)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().List(ctx).Return(nil, nil)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(nil)

	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "aritra123",
		Password:  "ari123",
		Latitude:  ptr(10.0),
		Longitude: ptr(20.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, tourist.Latitude)
	assert.Equal(t, 20.0, tourist.Longitude)
}

func TestLoginOrRegister_PublishFailureIsNotFatal(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "carol").Return(nil, notFound("tourist carol"))
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().List(ctx).Return([]*models.Tourist{}, nil)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(errors.New("redis down"))

	tourist, err := svc.LoginOrRegister(ctx, service.LoginInput{
		Username:  "carol",
		Password:  "pw",
		Name:      ptr("Carol"),
		TouristID: ptr("T200"),
	})

	require.NoError(t, err)
	assert.Equal(t, "T200", tourist.TouristID)
	// Координаты по умолчанию
	assert.Zero(t, tourist.Latitude)
	assert.Zero(t, tourist.Longitude)
}

func TestLoginOrRegister_RepositoryError(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "alice").Return(nil, errors.New("connection refused"))

	_, err := svc.LoginOrRegister(ctx, service.LoginInput{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNotFound)
	assert.ErrorContains(t, err, "could not look up tourist")
}

func TestUpdateLocation_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	stored := &models.Tourist{ID: 9, TouristID: "T300", Username: "dave"}
	snapshot := []*models.Tourist{stored}

	repoMock.EXPECT().GetByID(ctx, int64(9)).Return(stored, nil)
	repoMock.EXPECT().Update(ctx, stored).Return(nil)
	repoMock.EXPECT().List(ctx).Return(snapshot, nil)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, snapshot).Return(nil)

	err := svc.UpdateLocation(ctx, 9, 12.5, 77.6)

	require.NoError(t, err)
	assert.Equal(t, 12.5, stored.Latitude)
	assert.Equal(t, 77.6, stored.Longitude)
}

func TestUpdateLocation_NotFound(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(404)).Return(nil, notFound("tourist 404"))
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.UpdateLocation(ctx, 404, 1, 1)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRegister_Conflict(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "alice").Return(&models.Tourist{ID: 1, Username: "alice"}, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Register(ctx, &models.Tourist{Username: "alice", TouristID: "T999"})

	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestRegister_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "erin").Return(nil, notFound("tourist erin"))
	repoMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
		tourist.ID = 77
		return nil
	})
	repoMock.EXPECT().List(ctx).Return(nil, nil)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(nil)

	tourist := &models.Tourist{Username: "erin", TouristID: "T400", Name: "Erin", Password: "pw"}
	require.NoError(t, svc.Register(ctx, tourist))
	assert.Equal(t, int64(77), tourist.ID)
}

func TestAllLocations(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	expected := []*models.Tourist{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}
	repoMock.EXPECT().List(ctx).Return(expected, nil)

	tourists, err := svc.AllLocations(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, tourists)
}

func TestGetByUsername_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "ghost").Return(nil, notFound("tourist ghost"))

	_, err := svc.GetByUsername(ctx, "ghost")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestBroadcastLocations_ListFailureSkipsPublish(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(nil, errors.New("db down"))
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc.BroadcastLocations(ctx)
}

func TestSeed_CreatesMissingAndResetsExisting(t *testing.T) {
	svc, repoMock, publisherMock := newTestTrackingService(t)
	ctx := context.Background()

	seeds := service.DemoTourists()[:2]
	moved := &models.Tourist{ID: 1, TouristID: "T002", Username: "aritra123", Latitude: 1, Longitude: 1}

	repoMock.EXPECT().GetByUsername(ctx, "aritra123").Return(moved, nil)
	repoMock.EXPECT().Update(ctx, moved).Return(nil)
	repoMock.EXPECT().GetByUsername(ctx, "mehul123").Return(nil, notFound("tourist mehul123"))
	repoMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
		assert.Equal(t, "T003", tourist.TouristID)
		return nil
	})
	repoMock.EXPECT().List(ctx).Return([]*models.Tourist{moved}, nil)
	publisherMock.EXPECT().Publish(ctx, service.TopicLocations, gomock.Any()).Return(nil)

	require.NoError(t, svc.Seed(ctx, seeds))
	assert.Equal(t, 22.4865, moved.Latitude)
	assert.Equal(t, 88.3136, moved.Longitude)
}

func TestSeed_LookupFailure(t *testing.T) {
	svc, repoMock, _ := newTestTrackingService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByUsername(ctx, "aritra123").Return(nil, errors.New("db down"))

	err := svc.Seed(ctx, service.DemoTourists())
	assert.ErrorContains(t, err, "aritra123")
}
