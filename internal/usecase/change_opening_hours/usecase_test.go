package change_opening_hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/events"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(*domain.Restaurant)
	return restaurant, args.Error(1)
}

func (m *mockRepository) Store(ctx context.Context, restaurant *domain.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishOpeningHoursChanged(ctx context.Context, event events.OpeningHoursChanged) error {
	return m.Called(ctx, event).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) RecordOpeningHoursChange(command, outcome string) {
	m.Called(command, outcome)
}

// inlineTxManager выполняет функцию без транзакции
type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testRestaurantID = uuid.MustParse("3f9f1c1e-7c9a-4f55-9a0e-5a1b2c3d4e01")
	testAdminID      = uuid.MustParse("7d1f3a52-0a4b-4c53-9a6e-2f0f7c1a9b01")
	testOtherAdminID = uuid.MustParse("0c9a4f0e-5a57-4b0b-8b55-3f5c0f6f9e02")
	testSystemAdmin  = uuid.MustParse("5e5e5e5e-1111-4222-8333-444455556666")
	testNow          = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo      *mockRepository
	cache     *mockCache
	publisher *mockPublisher
	metrics   *mockMetrics
	useCase   *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:      new(mockRepository),
		cache:     new(mockCache),
		publisher: new(mockPublisher),
		metrics:   new(mockMetrics),
	}
	f.useCase = NewUseCase(f.repo, f.cache, f.publisher, inlineTxManager{}, f.metrics, nopLogger{})
	f.useCase.timeProvider = fixedTimeProvider{now: testNow}
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func newRestaurant(t *testing.T) *domain.Restaurant {
	t.Helper()

	created := domain.NewRestaurant(testRestaurantID, "Trattoria Roma", testSystemAdmin)
	require.True(t, created.IsSuccess())
	restaurant := created.Value()
	require.True(t, restaurant.AddAdministrator(testAdminID, testSystemAdmin).IsSuccess())

	lunch := domain.NewOpeningPeriod(12*time.Hour, 14*time.Hour)
	require.True(t, lunch.IsSuccess())
	require.True(t, restaurant.AddRegularOpeningPeriod(0, lunch.Value(), testSystemAdmin).IsSuccess())
	return restaurant
}

func TestUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		command Command
		check   func(t *testing.T, restaurant *domain.Restaurant)
	}{
		{
			name:    "restaurant admin adds regular period",
			user:    &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
			command: AddRegularOpeningPeriod{DayOfWeek: 0, Start: 17 * time.Hour, End: 22 * time.Hour},
			check: func(t *testing.T, restaurant *domain.Restaurant) {
				day, ok := restaurant.RegularOpeningDay(0)
				require.True(t, ok)
				assert.Len(t, day.OpeningPeriods(), 2)
				assert.Equal(t, testAdminID, restaurant.UpdatedBy())
			},
		},
		{
			name:    "system admin does not need to be listed",
			user:    &domain.User{ID: testSystemAdmin, Role: domain.RoleSystemAdmin},
			command: RemoveAllOpeningDays{},
			check: func(t *testing.T, restaurant *domain.Restaurant) {
				assert.Empty(t, restaurant.RegularOpeningDays())
			},
		},
		{
			name:    "removing unknown period is a no-op success",
			user:    &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
			command: RemoveRegularOpeningPeriod{DayOfWeek: 3, Start: 12 * time.Hour},
			check: func(t *testing.T, restaurant *domain.Restaurant) {
				assert.Len(t, restaurant.RegularOpeningDays(), 1)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			restaurant := newRestaurant(t)
			command := testCase.command.Name()

			f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(restaurant, nil)
			f.repo.On("Store", mock.Anything, restaurant).Return(nil)
			f.cache.On("Invalidate", mock.Anything, testRestaurantID).Return(nil)
			f.publisher.On("PublishOpeningHoursChanged", mock.Anything, mock.MatchedBy(func(event events.OpeningHoursChanged) bool {
				return event.RestaurantID == testRestaurantID &&
					event.Command == command &&
					event.ChangedBy == testCase.user.ID &&
					event.OccurredAt.Equal(testNow)
			})).Return(nil)
			f.metrics.On("RecordOpeningHoursChange", command, outcomeSuccess).Return()

			err := f.useCase.Execute(context.Background(), &Request{
				RestaurantID: testRestaurantID,
				User:         testCase.user,
				Command:      testCase.command,
			})

			require.NoError(t, err)
			testCase.check(t, restaurant)
			f.assertExpectations(t)
		})
	}
}

func TestUseCase_Execute_Preconditions(t *testing.T) {
	command := AddDeviatingOpeningDay{Date: domain.NewDate(2026, time.December, 24), Status: domain.DeviatingStatusClosed}

	tests := []struct {
		name            string
		user            *domain.User
		setupMocks      func(t *testing.T, f *fixture)
		expectedErr     error
		expectedOutcome string
	}{
		{
			name:            "no session",
			user:            nil,
			setupMocks:      func(t *testing.T, f *fixture) {},
			expectedErr:     domain.ErrSessionExpired,
			expectedOutcome: outcomeForbidden,
		},
		{
			name:            "customer role",
			user:            &domain.User{ID: testAdminID, Role: domain.RoleCustomer},
			setupMocks:      func(t *testing.T, f *fixture) {},
			expectedErr:     domain.ErrForbidden,
			expectedOutcome: outcomeForbidden,
		},
		{
			name: "restaurant does not exist",
			user: &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
			setupMocks: func(t *testing.T, f *fixture) {
				f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(nil, restaurantRepo.ErrRestaurantNotFound)
			},
			expectedErr:     domain.ErrRestaurantDoesNotExist,
			expectedOutcome: outcomeRejected,
		},
		{
			name: "admin of another restaurant",
			user: &domain.User{ID: testOtherAdminID, Role: domain.RoleRestaurantAdmin},
			setupMocks: func(t *testing.T, f *fixture) {
				f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(newRestaurant(t), nil)
			},
			expectedErr:     domain.ErrForbidden,
			expectedOutcome: outcomeForbidden,
		},
		{
			name: "repository failure",
			user: &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
			setupMocks: func(t *testing.T, f *fixture) {
				f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(nil, errors.New("connection refused"))
			},
			expectedErr:     ErrInternal,
			expectedOutcome: outcomeError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture()
			testCase.setupMocks(t, f)
			f.metrics.On("RecordOpeningHoursChange", command.Name(), testCase.expectedOutcome).Return()

			err := f.useCase.Execute(context.Background(), &Request{
				RestaurantID: testRestaurantID,
				User:         testCase.user,
				Command:      command,
			})

			assert.ErrorIs(t, err, testCase.expectedErr)
			f.repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestUseCase_Execute_DomainFailure(t *testing.T) {
	f := newFixture()
	restaurant := newRestaurant(t)
	updatedOn := restaurant.UpdatedOn()
	command := AddRegularOpeningPeriod{DayOfWeek: 0, Start: 13 * time.Hour, End: 15 * time.Hour}

	f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(restaurant, nil)
	f.metrics.On("RecordOpeningHoursChange", command.Name(), outcomeRejected).Return()

	err := f.useCase.Execute(context.Background(), &Request{
		RestaurantID: testRestaurantID,
		User:         &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
		Command:      command,
	})

	var failure *domain.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, domain.RestaurantOpeningPeriodIntersects, failure.Code)
	assert.Equal(t, updatedOn, restaurant.UpdatedOn())
	f.repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUseCase_Execute_InvalidPeriodInCommand(t *testing.T) {
	f := newFixture()
	restaurant := newRestaurant(t)
	command := AddRegularOpeningPeriod{DayOfWeek: 1, Start: 3 * time.Hour, End: 10 * time.Hour}

	f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(restaurant, nil)
	f.metrics.On("RecordOpeningHoursChange", command.Name(), outcomeRejected).Return()

	err := f.useCase.Execute(context.Background(), &Request{
		RestaurantID: testRestaurantID,
		User:         &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
		Command:      command,
	})

	assert.ErrorIs(t, err, domain.ErrOpeningPeriodBeginsTooEarly)
	f.assertExpectations(t)
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	f := newFixture()
	restaurant := newRestaurant(t)
	command := RemoveAllOpeningDays{}

	f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(restaurant, nil)
	f.repo.On("Store", mock.Anything, restaurant).Return(errors.New("serialization failure"))
	f.metrics.On("RecordOpeningHoursChange", command.Name(), outcomeError).Return()

	err := f.useCase.Execute(context.Background(), &Request{
		RestaurantID: testRestaurantID,
		User:         &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
		Command:      command,
	})

	assert.ErrorIs(t, err, ErrInternal)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOpeningHoursChanged", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUseCase_Execute_SideEffectFailuresAreIgnored(t *testing.T) {
	f := newFixture()
	restaurant := newRestaurant(t)
	command := RemoveRegularOpeningPeriod{DayOfWeek: 0, Start: 12 * time.Hour}

	f.repo.On("FindByID", mock.Anything, testRestaurantID).Return(restaurant, nil)
	f.repo.On("Store", mock.Anything, restaurant).Return(nil)
	f.cache.On("Invalidate", mock.Anything, testRestaurantID).Return(errors.New("redis down"))
	f.publisher.On("PublishOpeningHoursChanged", mock.Anything, mock.Anything).Return(errors.New("kafka down"))
	f.metrics.On("RecordOpeningHoursChange", command.Name(), outcomeSuccess).Return()

	err := f.useCase.Execute(context.Background(), &Request{
		RestaurantID: testRestaurantID,
		User:         &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
		Command:      command,
	})

	require.NoError(t, err)
	assert.Empty(t, restaurant.RegularOpeningDays())
	f.assertExpectations(t)
}

func TestUseCase_Execute_NilCommand(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.useCase.Execute(context.Background(), nil), ErrNilCommand)
	assert.ErrorIs(t, f.useCase.Execute(context.Background(), &Request{RestaurantID: testRestaurantID}), ErrNilCommand)
	f.assertExpectations(t)
}

func TestCommands_Names(t *testing.T) {
	commands := []Command{
		AddRegularOpeningPeriod{},
		RemoveRegularOpeningPeriod{},
		ChangeRegularOpeningPeriod{},
		AddDeviatingOpeningDay{},
		ChangeDeviatingOpeningDayStatus{},
		RemoveDeviatingOpeningDay{},
		AddDeviatingOpeningPeriod{},
		ChangeDeviatingOpeningPeriod{},
		RemoveDeviatingOpeningPeriod{},
		RemoveAllOpeningDays{},
	}

	names := make(map[string]struct{}, len(commands))
	for _, command := range commands {
		names[command.Name()] = struct{}{}
	}
	assert.Len(t, names, len(commands))
}

func TestCommands_DeviatingLifecycle(t *testing.T) {
	restaurant := newRestaurant(t)
	date := domain.NewDate(2026, time.December, 24)

	steps := []struct {
		command        Command
		expectedStatus domain.DeviatingOpeningDayStatus
		expectedCount  int
	}{
		{command: AddDeviatingOpeningDay{Date: date, Status: domain.DeviatingStatusClosed}, expectedStatus: domain.DeviatingStatusClosed},
		{command: ChangeDeviatingOpeningDayStatus{Date: date, Status: domain.DeviatingStatusFullyBooked}, expectedStatus: domain.DeviatingStatusFullyBooked},
		{command: AddDeviatingOpeningPeriod{Date: date, Start: 16 * time.Hour, End: 22 * time.Hour}, expectedStatus: domain.DeviatingStatusOpen, expectedCount: 1},
		{command: ChangeDeviatingOpeningPeriod{Date: date, OldStart: 16 * time.Hour, Start: 17 * time.Hour, End: 23 * time.Hour}, expectedStatus: domain.DeviatingStatusOpen, expectedCount: 1},
		{command: RemoveDeviatingOpeningPeriod{Date: date, Start: 17 * time.Hour}, expectedStatus: domain.DeviatingStatusClosed},
	}

	for _, step := range steps {
		result := step.command.Apply(restaurant, testAdminID)
		require.True(t, result.IsSuccess(), "%s: %v", step.command.Name(), result.Err())

		day, ok := restaurant.DeviatingOpeningDay(date)
		require.True(t, ok)
		assert.Equal(t, step.expectedStatus, day.Status(), step.command.Name())
		assert.Len(t, day.OpeningPeriods(), step.expectedCount, step.command.Name())
	}

	require.True(t, RemoveDeviatingOpeningDay{Date: date}.Apply(restaurant, testAdminID).IsSuccess())
	_, ok := restaurant.DeviatingOpeningDay(date)
	assert.False(t, ok)
}

func TestCommands_ChangeRegularOpeningPeriod(t *testing.T) {
	restaurant := newRestaurant(t)

	result := ChangeRegularOpeningPeriod{DayOfWeek: 0, OldStart: 12 * time.Hour, Start: 11 * time.Hour, End: 15 * time.Hour}.
		Apply(restaurant, testAdminID)

	require.True(t, result.IsSuccess())
	day, _ := restaurant.RegularOpeningDay(0)
	require.Len(t, day.OpeningPeriods(), 1)
	assert.Equal(t, "11:00-15:00", day.OpeningPeriods()[0].String())

	invalid := ChangeRegularOpeningPeriod{DayOfWeek: 0, OldStart: 11 * time.Hour, Start: 15 * time.Hour, End: 14 * time.Hour}.
		Apply(restaurant, testAdminID)
	require.True(t, invalid.IsFailure())
	assert.Equal(t, domain.RestaurantOpeningPeriodEndsBeforeStart, invalid.Failure().Code)
}
