package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Сообщения для пользователя по кодам доменных ошибок
var failureMessages = map[domain.FailureResultCode]string{
	domain.SessionExpired:         "сессия истекла, требуется авторизация",
	domain.Forbidden:              "доступ запрещен",
	domain.RequiredFieldEmpty:     "не заполнено обязательное поле",
	domain.FieldValueTooLong:      "значение поля слишком длинное",
	domain.FieldValueInvalid:      "некорректное значение поля",
	domain.RestaurantDoesNotExist: "ресторан не найден",

	domain.RestaurantOpeningPeriodBeginsTooEarly:  "период работы начинается слишком рано",
	domain.RestaurantOpeningPeriodEndsBeforeStart: "период работы должен заканчиваться позже начала",
	domain.RestaurantOpeningPeriodIntersects:      "период работы пересекается с существующим",
	domain.RestaurantOpeningPeriodDoesNotExist:    "период работы не найден",

	domain.RestaurantDeviatingOpeningDayDoesNotExist:        "особый день не найден",
	domain.RestaurantDeviatingOpeningDayHasStillOpenPeriods: "у особого дня остались периоды работы",
}

// FailureStatus HTTP статус для кода доменной ошибки
func FailureStatus(code domain.FailureResultCode) int {
	switch code {
	case domain.SessionExpired:
		return http.StatusUnauthorized
	case domain.Forbidden:
		return http.StatusForbidden
	case domain.RestaurantDoesNotExist,
		domain.RestaurantOpeningPeriodDoesNotExist,
		domain.RestaurantDeviatingOpeningDayDoesNotExist:
		return http.StatusNotFound
	case domain.RestaurantOpeningPeriodIntersects,
		domain.RestaurantDeviatingOpeningDayHasStillOpenPeriods:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// FailureMessage локализованное сообщение; аргументы ошибки дописываются через двоеточие
func FailureMessage(failure *domain.Failure) string {
	message, ok := failureMessages[failure.Code]
	if !ok {
		message = string(failure.Code)
	}
	if len(failure.Args) == 0 {
		return message
	}

	args := make([]string, 0, len(failure.Args))
	for _, arg := range failure.Args {
		args = append(args, fmt.Sprint(arg))
	}
	return message + ": " + strings.Join(args, ", ")
}

func RespondFailure(w http.ResponseWriter, failure *domain.Failure) {
	RespondJSON(w, FailureStatus(failure.Code), ErrorResponse{
		Error: FailureMessage(failure),
		Code:  string(failure.Code),
	})
}

// RespondDomainError отвечает доменной ошибкой, если err ее содержит, иначе 500.
// Возвращает false для внутренних ошибок, чтобы handler залогировал их как Error
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var failure *domain.Failure
	if errors.As(err, &failure) {
		RespondFailure(w, failure)
		return true
	}
	RespondInternalError(w)
	return false
}
