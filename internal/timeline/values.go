package timeline

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/timeline-visualizer/internal/pkg/utils"
)

// object - JSON-объект с неразобранными значениями.
// Экспорт истории местоположений не имеет строгой схемы, поэтому каждое поле
// читается отдельно и ошибка в одном поле не мешает остальным.
type object map[string]json.RawMessage

// kind возвращает первый значимый байт JSON-значения
func kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeObject(raw json.RawMessage) (object, bool) {
	if kind(raw) != '{' {
		return nil, false
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func decodeArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	if kind(raw) != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	if kind(raw) != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// get возвращает значение поля, если оно присутствует и не равно null
func (o object) get(key string) (json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (o object) object(key string) (object, bool) {
	raw, ok := o.get(key)
	if !ok {
		return nil, false
	}
	return decodeObject(raw)
}

// str возвращает непустую строку; отсутствие, пустая строка и нестроковое
// значение считаются одинаково отсутствующими
func (o object) str(key string) (string, bool) {
	raw, ok := o.get(key)
	if !ok {
		return "", false
	}
	s, ok := decodeString(raw)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// strOr возвращает первую найденную непустую строку среди ключей или fallback
func (o object) strOr(fallback string, keys ...string) string {
	for _, key := range keys {
		if s, ok := o.str(key); ok {
			return s
		}
	}
	return fallback
}

// number читает число, записанное как JSON-число или как строка ("0.900000").
// present=false, если поля нет; ok=false, если значение есть, но не является
// конечным числом.
func (o object) number(key string) (value float64, present, ok bool) {
	raw, exists := o.get(key)
	if !exists {
		return 0, false, false
	}

	switch kind(raw) {
	case '"':
		s, _ := decodeString(raw)
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || !utils.IsFinite(f) {
			return 0, true, false
		}
		return f, true, true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil || !utils.IsFinite(f) {
			return 0, true, false
		}
		return f, true, true
	default:
		return 0, true, false
	}
}
