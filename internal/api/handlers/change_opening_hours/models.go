package change_opening_hours

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	changeOpeningHours "github.com/m04kA/SMC-RestaurantService/internal/usecase/change_opening_hours"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var (
	errMissingField = errors.New("missing required field")
	errInvalidTime  = errors.New("invalid time")
)

// fieldError ошибка разбора конкретного поля запроса
type fieldError struct {
	kind  error
	field string
}

func (e *fieldError) Error() string {
	return e.kind.Error() + ": " + e.field
}

func (e *fieldError) Unwrap() error {
	return e.kind
}

// OpeningHoursRequest общее тело запроса для всех команд; набор обязательных полей зависит от команды
type OpeningHoursRequest struct {
	DayOfWeek *int                             `json:"dayOfWeek,omitempty"` // 0 - понедельник, 6 - воскресенье
	Date      *domain.Date                     `json:"date,omitempty"`      // YYYY-MM-DD
	Status    domain.DeviatingOpeningDayStatus `json:"status,omitempty"`    // open, closed, fully_booked
	OldStart  types.TimeString                 `json:"oldStart,omitempty"`  // HH:MM, начало изменяемого периода
	Start     types.TimeString                 `json:"start,omitempty"`     // HH:MM
	End       types.TimeString                 `json:"end,omitempty"`       // HH:MM, может быть больше 24:00
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type commandBuilder func(req *OpeningHoursRequest) (changeOpeningHours.Command, error)

// commandBuilders действие из URL -> конструктор команды
var commandBuilders = map[string]commandBuilder{
	"addopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		dayOfWeek, err := req.dayOfWeek()
		if err != nil {
			return nil, err
		}
		start, end, err := req.period()
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.AddRegularOpeningPeriod{DayOfWeek: dayOfWeek, Start: start, End: end}, nil
	},
	"removeopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		dayOfWeek, err := req.dayOfWeek()
		if err != nil {
			return nil, err
		}
		start, err := parseTime("start", req.Start)
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.RemoveRegularOpeningPeriod{DayOfWeek: dayOfWeek, Start: start}, nil
	},
	"changeopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		dayOfWeek, err := req.dayOfWeek()
		if err != nil {
			return nil, err
		}
		oldStart, err := parseTime("oldStart", req.OldStart)
		if err != nil {
			return nil, err
		}
		start, end, err := req.period()
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.ChangeRegularOpeningPeriod{DayOfWeek: dayOfWeek, OldStart: oldStart, Start: start, End: end}, nil
	},
	"adddeviatingopeningday": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		if req.Status == "" {
			return nil, &fieldError{kind: errMissingField, field: "status"}
		}
		return changeOpeningHours.AddDeviatingOpeningDay{Date: date, Status: req.Status}, nil
	},
	"changedeviatingopeningdaystatus": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		if req.Status == "" {
			return nil, &fieldError{kind: errMissingField, field: "status"}
		}
		return changeOpeningHours.ChangeDeviatingOpeningDayStatus{Date: date, Status: req.Status}, nil
	},
	"removedeviatingopeningday": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.RemoveDeviatingOpeningDay{Date: date}, nil
	},
	"adddeviatingopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		start, end, err := req.period()
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.AddDeviatingOpeningPeriod{Date: date, Start: start, End: end}, nil
	},
	"changedeviatingopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		oldStart, err := parseTime("oldStart", req.OldStart)
		if err != nil {
			return nil, err
		}
		start, end, err := req.period()
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.ChangeDeviatingOpeningPeriod{Date: date, OldStart: oldStart, Start: start, End: end}, nil
	},
	"removedeviatingopeningperiod": func(req *OpeningHoursRequest) (changeOpeningHours.Command, error) {
		date, err := req.date()
		if err != nil {
			return nil, err
		}
		start, err := parseTime("start", req.Start)
		if err != nil {
			return nil, err
		}
		return changeOpeningHours.RemoveDeviatingOpeningPeriod{Date: date, Start: start}, nil
	},
	"removeallopeningdays": func(*OpeningHoursRequest) (changeOpeningHours.Command, error) {
		return changeOpeningHours.RemoveAllOpeningDays{}, nil
	},
}

// Actions список действий для регистрации маршрута
func Actions() []string {
	actions := make([]string, 0, len(commandBuilders))
	for action := range commandBuilders {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// ActionsPattern шаблон переменной {action} для gorilla/mux
func ActionsPattern() string {
	return strings.Join(Actions(), "|")
}

// ToCommand конвертирует тело запроса в команду use case
func (req *OpeningHoursRequest) ToCommand(action string) (changeOpeningHours.Command, error) {
	build, ok := commandBuilders[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}
	return build(req)
}

func (req *OpeningHoursRequest) dayOfWeek() (int, error) {
	if req.DayOfWeek == nil {
		return 0, &fieldError{kind: errMissingField, field: "dayOfWeek"}
	}
	return *req.DayOfWeek, nil
}

func (req *OpeningHoursRequest) date() (domain.Date, error) {
	if req.Date == nil || req.Date.IsZero() {
		return domain.Date{}, &fieldError{kind: errMissingField, field: "date"}
	}
	return *req.Date, nil
}

func (req *OpeningHoursRequest) period() (time.Duration, time.Duration, error) {
	start, err := parseTime("start", req.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTime("end", req.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTime(field string, value types.TimeString) (time.Duration, error) {
	if value == "" {
		return 0, &fieldError{kind: errMissingField, field: field}
	}
	d, err := value.Duration()
	if err != nil {
		return 0, &fieldError{kind: errInvalidTime, field: field}
	}
	return d, nil
}
