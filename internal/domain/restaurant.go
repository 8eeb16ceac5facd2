package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SupportedOrderMode defines when online orders are accepted relative to opening periods
type SupportedOrderMode string

const (
	OrderModeOnlyPhone   SupportedOrderMode = "only_phone"
	OrderModeAtNextShift SupportedOrderMode = "at_next_shift"
	OrderModeAnytime     SupportedOrderMode = "anytime"
)

func (m SupportedOrderMode) IsValid() bool {
	switch m {
	case OrderModeOnlyPhone, OrderModeAtNextShift, OrderModeAnytime:
		return true
	default:
		return false
	}
}

// Restaurant is the aggregate root owning the opening-hours calendar.
// Mutations validate first and change state only on success.
// Not safe for concurrent use.
type Restaurant struct {
	id                 uuid.UUID
	name               string
	isActive           bool
	supportedOrderMode SupportedOrderMode
	administrators     map[uuid.UUID]struct{}

	regularOpeningDays   map[int]RegularOpeningDay
	deviatingOpeningDays map[Date]DeviatingOpeningDay

	createdOn time.Time
	createdBy uuid.UUID
	updatedOn time.Time
	updatedBy uuid.UUID
}

// NewRestaurant creates an inactive restaurant that accepts orders only by phone
func NewRestaurant(id uuid.UUID, name string, createdBy uuid.UUID) Result[*Restaurant] {
	if failure := validateName(name); failure != nil {
		return FailWith[*Restaurant](failure)
	}

	now := timeNow()
	return Success(&Restaurant{
		id:                   id,
		name:                 strings.TrimSpace(name),
		supportedOrderMode:   OrderModeOnlyPhone,
		administrators:       make(map[uuid.UUID]struct{}),
		regularOpeningDays:   make(map[int]RegularOpeningDay),
		deviatingOpeningDays: make(map[Date]DeviatingOpeningDay),
		createdOn:            now,
		createdBy:            createdBy,
		updatedOn:            now,
		updatedBy:            createdBy,
	})
}

func (r *Restaurant) ID() uuid.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) IsActive() bool {
	return r.isActive
}

func (r *Restaurant) SupportedOrderMode() SupportedOrderMode {
	return r.supportedOrderMode
}

func (r *Restaurant) CreatedOn() time.Time {
	return r.createdOn
}

func (r *Restaurant) CreatedBy() uuid.UUID {
	return r.createdBy
}

func (r *Restaurant) UpdatedOn() time.Time {
	return r.updatedOn
}

func (r *Restaurant) UpdatedBy() uuid.UUID {
	return r.updatedBy
}

// Administrators returns administrator ids in a stable order
func (r *Restaurant) Administrators() []uuid.UUID {
	result := make([]uuid.UUID, 0, len(r.administrators))
	for userID := range r.administrators {
		result = append(result, userID)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

func (r *Restaurant) HasAdministrator(userID uuid.UUID) bool {
	_, ok := r.administrators[userID]
	return ok
}

func (r *Restaurant) ChangeName(name string, changedBy uuid.UUID) Result[bool] {
	if failure := validateName(name); failure != nil {
		return FailWith[bool](failure)
	}

	r.name = strings.TrimSpace(name)
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) ChangeSupportedOrderMode(mode SupportedOrderMode, changedBy uuid.UUID) Result[bool] {
	if !mode.IsValid() {
		return Fail[bool](FieldValueInvalid, "supportedOrderMode", string(mode))
	}

	r.supportedOrderMode = mode
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) Activate(changedBy uuid.UUID) Result[bool] {
	r.isActive = true
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) Deactivate(changedBy uuid.UUID) Result[bool] {
	r.isActive = false
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) AddAdministrator(userID uuid.UUID, changedBy uuid.UUID) Result[bool] {
	if userID == uuid.Nil {
		return Fail[bool](RequiredFieldEmpty, "userId")
	}

	r.administrators[userID] = struct{}{}
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) RemoveAdministrator(userID uuid.UUID, changedBy uuid.UUID) Result[bool] {
	if !r.HasAdministrator(userID) {
		return Success(true)
	}

	delete(r.administrators, userID)
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) touch(changedBy uuid.UUID) {
	r.updatedOn = timeNow()
	r.updatedBy = changedBy
}

func validateName(name string) *Failure {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewFailure(RequiredFieldEmpty, "name")
	}
	if utf8.RuneCountInString(trimmed) > MaxRestaurantNameLength {
		return NewFailure(FieldValueTooLong, "name", MaxRestaurantNameLength)
	}
	return nil
}
