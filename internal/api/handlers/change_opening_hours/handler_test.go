package change_opening_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	changeOpeningHours "github.com/m04kA/SMC-RestaurantService/internal/usecase/change_opening_hours"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *changeOpeningHours.Request) error {
	return m.Called(ctx, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testRestaurantID = uuid.MustParse("3f9f1c1e-7c9a-4f55-9a0e-5a1b2c3d4e01")
	testAdminID      = uuid.MustParse("7d1f3a52-0a4b-4c53-9a6e-2f0f7c1a9b01")
)

func newRouter(useCase ChangeOpeningHoursUseCase) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/restaurants/{restaurantId}/{action:"+ActionsPattern()+"}",
		NewHandler(useCase, nopLogger{}).Handle).Methods(http.MethodPost)
	return r
}

func doRequest(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, testAdminID.String())
	req.Header.Set(middleware.HeaderUserRole, "restaurant_admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Commands(t *testing.T) {
	christmas := domain.NewDate(2026, time.December, 24)

	tests := []struct {
		name     string
		action   string
		body     string
		expected changeOpeningHours.Command
	}{
		{
			name:     "add regular period past midnight",
			action:   "addopeningperiod",
			body:     `{"dayOfWeek": 5, "start": "18:00", "end": "26:30"}`,
			expected: changeOpeningHours.AddRegularOpeningPeriod{DayOfWeek: 5, Start: 18 * time.Hour, End: 26*time.Hour + 30*time.Minute},
		},
		{
			name:     "remove regular period",
			action:   "removeopeningperiod",
			body:     `{"dayOfWeek": 0, "start": "11:00"}`,
			expected: changeOpeningHours.RemoveRegularOpeningPeriod{DayOfWeek: 0, Start: 11 * time.Hour},
		},
		{
			name:     "change regular period",
			action:   "changeopeningperiod",
			body:     `{"dayOfWeek": 1, "oldStart": "11:00", "start": "10:00", "end": "15:00"}`,
			expected: changeOpeningHours.ChangeRegularOpeningPeriod{DayOfWeek: 1, OldStart: 11 * time.Hour, Start: 10 * time.Hour, End: 15 * time.Hour},
		},
		{
			name:     "add deviating day",
			action:   "adddeviatingopeningday",
			body:     `{"date": "2026-12-24", "status": "closed"}`,
			expected: changeOpeningHours.AddDeviatingOpeningDay{Date: christmas, Status: domain.DeviatingStatusClosed},
		},
		{
			name:     "change deviating day status",
			action:   "changedeviatingopeningdaystatus",
			body:     `{"date": "2026-12-24", "status": "fully_booked"}`,
			expected: changeOpeningHours.ChangeDeviatingOpeningDayStatus{Date: christmas, Status: domain.DeviatingStatusFullyBooked},
		},
		{
			name:     "remove deviating day",
			action:   "removedeviatingopeningday",
			body:     `{"date": "2026-12-24"}`,
			expected: changeOpeningHours.RemoveDeviatingOpeningDay{Date: christmas},
		},
		{
			name:     "add deviating period",
			action:   "adddeviatingopeningperiod",
			body:     `{"date": "2026-12-24", "start": "12:00", "end": "15:00"}`,
			expected: changeOpeningHours.AddDeviatingOpeningPeriod{Date: christmas, Start: 12 * time.Hour, End: 15 * time.Hour},
		},
		{
			name:     "change deviating period",
			action:   "changedeviatingopeningperiod",
			body:     `{"date": "2026-12-24", "oldStart": "12:00", "start": "13:00", "end": "16:00"}`,
			expected: changeOpeningHours.ChangeDeviatingOpeningPeriod{Date: christmas, OldStart: 12 * time.Hour, Start: 13 * time.Hour, End: 16 * time.Hour},
		},
		{
			name:     "remove deviating period",
			action:   "removedeviatingopeningperiod",
			body:     `{"date": "2026-12-24", "start": "12:00"}`,
			expected: changeOpeningHours.RemoveDeviatingOpeningPeriod{Date: christmas, Start: 12 * time.Hour},
		},
		{
			name:     "remove all with empty body",
			action:   "removeallopeningdays",
			body:     ``,
			expected: changeOpeningHours.RemoveAllOpeningDays{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			useCase := new(mockUseCase)
			useCase.On("Execute", mock.Anything, &changeOpeningHours.Request{
				RestaurantID: testRestaurantID,
				User:         &domain.User{ID: testAdminID, Role: domain.RoleRestaurantAdmin},
				Command:      testCase.expected,
			}).Return(nil)

			rec := doRequest(newRouter(useCase), "/restaurants/"+testRestaurantID.String()+"/"+testCase.action, testCase.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success": true}`, rec.Body.String())
			useCase.AssertExpectations(t)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid restaurant id",
			path:           "/restaurants/42/addopeningperiod",
			body:           `{"dayOfWeek": 0, "start": "11:00", "end": "14:00"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidRestaurantID,
		},
		{
			name:           "unknown action is not routed",
			path:           "/restaurants/" + testRestaurantID.String() + "/openforever",
			body:           `{}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed json",
			path:           "/restaurants/" + testRestaurantID.String() + "/addopeningperiod",
			body:           `{"dayOfWeek": `,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidRequestBody,
		},
		{
			name:           "unknown field",
			path:           "/restaurants/" + testRestaurantID.String() + "/addopeningperiod",
			body:           `{"weekday": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidRequestBody,
		},
		{
			name:           "invalid date",
			path:           "/restaurants/" + testRestaurantID.String() + "/adddeviatingopeningday",
			body:           `{"date": "24.12.2026", "status": "closed"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidRequestBody,
		},
		{
			name:           "missing day of week",
			path:           "/restaurants/" + testRestaurantID.String() + "/addopeningperiod",
			body:           `{"start": "11:00", "end": "14:00"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgMissingField + ": dayOfWeek",
		},
		{
			name:           "missing status",
			path:           "/restaurants/" + testRestaurantID.String() + "/adddeviatingopeningday",
			body:           `{"date": "2026-12-24"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgMissingField + ": status",
		},
		{
			name:           "invalid time",
			path:           "/restaurants/" + testRestaurantID.String() + "/addopeningperiod",
			body:           `{"dayOfWeek": 0, "start": "11:00", "end": "48:00"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgInvalidTime + ": end",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			useCase := new(mockUseCase)

			rec := doRequest(newRouter(useCase), testCase.path, testCase.body)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
			if testCase.expectedError != "" {
				assert.Contains(t, rec.Body.String(), testCase.expectedError)
			}
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "intersecting period",
			err:            domain.NewFailure(domain.RestaurantOpeningPeriodIntersects),
			expectedStatus: http.StatusConflict,
			expectedCode:   "RestaurantOpeningPeriodIntersects",
		},
		{
			name:           "begins too early",
			err:            domain.NewFailure(domain.RestaurantOpeningPeriodBeginsTooEarly, "04:00"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "RestaurantOpeningPeriodBeginsTooEarly",
		},
		{
			name:           "not an administrator",
			err:            domain.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			expectedCode:   "Forbidden",
		},
		{
			name:           "restaurant missing",
			err:            domain.NewFailure(domain.RestaurantDoesNotExist, testRestaurantID.String()),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "RestaurantDoesNotExist",
		},
		{
			name:           "internal error",
			err:            changeOpeningHours.ErrInternal,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			useCase := new(mockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(testCase.err)

			rec := doRequest(newRouter(useCase), "/restaurants/"+testRestaurantID.String()+"/addopeningperiod",
				`{"dayOfWeek": 0, "start": "11:00", "end": "14:00"}`)

			assert.Equal(t, testCase.expectedStatus, rec.Code)
			if testCase.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+testCase.expectedCode+`"`)
			}
		})
	}
}

func TestHandler_RequiresSession(t *testing.T) {
	useCase := new(mockUseCase)

	req := httptest.NewRequest(http.MethodPost, "/restaurants/"+testRestaurantID.String()+"/removeallopeningdays", nil)
	rec := httptest.NewRecorder()
	newRouter(useCase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestActions(t *testing.T) {
	assert.Len(t, Actions(), 10)
	assert.Contains(t, ActionsPattern(), "removeallopeningdays")
}
