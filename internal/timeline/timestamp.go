package timeline

import (
	"strings"
	"time"
)

// Форматы без часового пояса интерпретируются в настроенной локации
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp разбирает метку времени экспорта.
// Основной формат - RFC 3339 с дробными секундами: 2024-06-21T19:51:13.014-06:00.
func parseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}

	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// timestamp читает метку времени из поля объекта
func (o object) timestamp(key string, loc *time.Location) (t time.Time, raw string, present, ok bool) {
	value, exists := o.get(key)
	if !exists {
		return time.Time{}, "", false, false
	}
	s, isString := decodeString(value)
	if !isString {
		return time.Time{}, "", true, false
	}
	t, ok = parseTimestamp(s, loc)
	return t, s, true, ok
}
