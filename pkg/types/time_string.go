package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxTimeStringHours верхняя граница часов: время может уходить за полночь (например "26:00")
const MaxTimeStringHours = 47

// ErrInvalidTimeString некорректный формат времени
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString время суток в формате "HH:MM" (часы могут быть больше 23)
type TimeString string

// NewTimeStringFromDuration форматирует смещение от начала суток как "HH:MM"
func NewTimeStringFromDuration(d time.Duration) TimeString {
	totalMinutes := int(d / time.Minute)
	return TimeString(fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60))
}

// Duration парсит строку в смещение от начала суток
func (t TimeString) Duration() (time.Duration, error) {
	hoursStr, minutesStr, ok := strings.Cut(strings.TrimSpace(string(t)), ":")
	if !ok || len(minutesStr) != 2 || hoursStr == "" || len(hoursStr) > 2 {
		return 0, ErrInvalidTimeString
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours < 0 || hours > MaxTimeStringHours {
		return 0, ErrInvalidTimeString
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTimeString
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := t.Duration()
	return err
}

func (t TimeString) String() string {
	return string(t)
}
