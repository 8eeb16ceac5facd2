package domain

import (
	"fmt"
	"strings"
)

// FailureResultCode identifies why an operation failed
type FailureResultCode string

const (
	SessionExpired         FailureResultCode = "SessionExpired"
	Forbidden              FailureResultCode = "Forbidden"
	RequiredFieldEmpty     FailureResultCode = "RequiredFieldEmpty"
	FieldValueTooLong      FailureResultCode = "FieldValueTooLong"
	FieldValueInvalid      FailureResultCode = "FieldValueInvalid"
	RestaurantDoesNotExist FailureResultCode = "RestaurantDoesNotExist"

	RestaurantOpeningPeriodBeginsTooEarly  FailureResultCode = "RestaurantOpeningPeriodBeginsTooEarly"
	RestaurantOpeningPeriodEndsBeforeStart FailureResultCode = "RestaurantOpeningPeriodEndsBeforeStart"
	RestaurantOpeningPeriodIntersects      FailureResultCode = "RestaurantOpeningPeriodIntersects"
	RestaurantOpeningPeriodDoesNotExist    FailureResultCode = "RestaurantOpeningPeriodDoesNotExist"

	RestaurantDeviatingOpeningDayDoesNotExist        FailureResultCode = "RestaurantDeviatingOpeningDayDoesNotExist"
	RestaurantDeviatingOpeningDayHasStillOpenPeriods FailureResultCode = "RestaurantDeviatingOpeningDayHasStillOpenPeriods"
)

// Failure is a typed domain failure. It implements error;
// errors.Is matches two failures by code regardless of args.
type Failure struct {
	Code FailureResultCode
	Args []interface{}
}

// NewFailure создает ошибку с кодом и аргументами для форматирования сообщения
func NewFailure(code FailureResultCode, args ...interface{}) *Failure {
	return &Failure{Code: code, Args: args}
}

func (f *Failure) Error() string {
	if len(f.Args) == 0 {
		return "domain: " + string(f.Code)
	}

	args := make([]string, 0, len(f.Args))
	for _, arg := range f.Args {
		args = append(args, fmt.Sprint(arg))
	}
	return fmt.Sprintf("domain: %s (%s)", f.Code, strings.Join(args, ", "))
}

func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t != nil && t.Code == f.Code
}

// Sentinel-значения для errors.Is
var (
	ErrSessionExpired         = NewFailure(SessionExpired)
	ErrForbidden              = NewFailure(Forbidden)
	ErrRequiredFieldEmpty     = NewFailure(RequiredFieldEmpty)
	ErrFieldValueTooLong      = NewFailure(FieldValueTooLong)
	ErrFieldValueInvalid      = NewFailure(FieldValueInvalid)
	ErrRestaurantDoesNotExist = NewFailure(RestaurantDoesNotExist)

	ErrOpeningPeriodBeginsTooEarly  = NewFailure(RestaurantOpeningPeriodBeginsTooEarly)
	ErrOpeningPeriodEndsBeforeStart = NewFailure(RestaurantOpeningPeriodEndsBeforeStart)
	ErrOpeningPeriodIntersects      = NewFailure(RestaurantOpeningPeriodIntersects)
	ErrOpeningPeriodDoesNotExist    = NewFailure(RestaurantOpeningPeriodDoesNotExist)

	ErrDeviatingOpeningDayDoesNotExist        = NewFailure(RestaurantDeviatingOpeningDayDoesNotExist)
	ErrDeviatingOpeningDayHasStillOpenPeriods = NewFailure(RestaurantDeviatingOpeningDayHasStillOpenPeriods)
)

// Result holds either a value or a Failure
type Result[T any] struct {
	value   T
	failure *Failure
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](code FailureResultCode, args ...interface{}) Result[T] {
	return Result[T]{failure: NewFailure(code, args...)}
}

// FailWith переносит существующую ошибку в Result другого типа
func FailWith[T any](failure *Failure) Result[T] {
	return Result[T]{failure: failure}
}

func (r Result[T]) IsSuccess() bool {
	return r.failure == nil
}

func (r Result[T]) IsFailure() bool {
	return r.failure != nil
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Err возвращает nil для успеха, иначе *Failure
func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure
}
