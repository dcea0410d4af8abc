package format

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func builtins() map[byte]Func {
	return map[byte]Func{
		's': String,
		'd': Number,
		'i': Integer,
		'f': Float,
		'j': JSON,
	}
}

// String renders v with [fmt.Sprint].
func String(v any, _ Subject) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// Number renders v as a decimal number, or "NaN" when v is not numeric.
// Strings holding a number are parsed.
func Number(v any, _ Subject) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		f, ok := toFloat(rv)
		if !ok {
			return "NaN"
		}

		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// Integer renders the integer part of v, or "NaN" when v is not numeric.
func Integer(v any, _ Subject) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(v, nil)
	default:
		f, ok := toFloat(rv)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return "NaN"
		}

		return strconv.FormatFloat(math.Trunc(f), 'f', -1, 64)
	}
}

// Float renders v as a floating point number, or "NaN" when v is not numeric.
func Float(v any, _ Subject) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatFloat(float64(rv.Int()), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatFloat(float64(rv.Uint()), 'f', -1, 64)
	default:
		f, ok := toFloat(rv)
		if !ok {
			return "NaN"
		}

		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// JSON renders v as JSON. Values that cannot be encoded produce an inline
// error marker instead.
func JSON(v any, _ Subject) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[UnexpectedJSONParseError]: " + err.Error()
	}

	return string(b)
}

func toFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}

		return 0, true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}
