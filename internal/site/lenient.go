package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Repair records a value the decoder had to change to type a section.
// Field is relative to the section, e.g. "content.testimonials.rating".
type Repair struct {
	Field   string
	Message string
}

const maxRepairs = 32

// decodeLenient unmarshals raw into a fresh value from newContent. Numeric
// and boolean fields holding the wrong JSON type are coerced when the text is
// unambiguous ("5", "true") and dropped otherwise, so they keep their default.
// Any other mismatch is returned as an error.
func decodeLenient(raw json.RawMessage, newContent func() Content) (Content, []Repair, error) {
	c := newContent()
	err := json.Unmarshal(raw, c)
	if err == nil || !scalarTypeError(err) {
		return c, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if dec.Decode(&doc) != nil {
		return nil, nil, err
	}

	var repairs []Repair
	for attempt := 0; attempt < maxRepairs; attempt++ {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || !scalarTypeError(err) {
			return nil, nil, err
		}

		fixed := repairField(doc, strings.Split(typeErr.Field, "."), typeErr.Type)
		if len(fixed) == 0 {
			return nil, nil, err
		}
		for _, msg := range fixed {
			repairs = append(repairs, Repair{Field: "content." + typeErr.Field, Message: msg})
		}

		data, mErr := json.Marshal(doc)
		if mErr != nil {
			return nil, nil, err
		}
		c = newContent()
		if err = json.Unmarshal(data, c); err == nil {
			return c, repairs, nil
		}
	}
	return nil, nil, err
}

func scalarTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Type == nil || typeErr.Field == "" {
		return false
	}
	switch scalarKind(typeErr.Type) {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func scalarKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind()
}

// repairField walks path through doc and fixes every value at its end that
// does not fit want. List elements are all visited unless the path names an index.
func repairField(node any, path []string, want reflect.Type) []string {
	if len(path) == 0 {
		return nil
	}

	switch n := node.(type) {
	case []any:
		if i, err := strconv.Atoi(path[0]); err == nil {
			if i >= 0 && i < len(n) {
				return repairField(n[i], path[1:], want)
			}
			return nil
		}
		var fixed []string
		for _, item := range n {
			fixed = append(fixed, repairField(item, path, want)...)
		}
		return fixed

	case map[string]any:
		value, ok := n[path[0]]
		if !ok {
			return nil
		}
		if len(path) > 1 {
			return repairField(value, path[1:], want)
		}
		if fits(value, want) {
			return nil
		}
		literal := jsonText(value)
		if coerced, ok := coerce(value, want); ok {
			n[path[0]] = coerced
			return []string{fmt.Sprintf("%s read as %s", literal, jsonText(coerced))}
		}
		delete(n, path[0])
		return []string{fmt.Sprintf("%s is not a valid %s, default used", literal, kindName(want))}
	}
	return nil
}

func fits(value any, want reflect.Type) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, reflect.New(want).Interface()) == nil
}

func coerce(value any, want reflect.Type) (any, bool) {
	var out any
	switch kind := scalarKind(want); {
	case kind == reflect.Bool:
		switch v := value.(type) {
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, false
			}
			out = b
		case json.Number:
			switch v.String() {
			case "0":
				out = false
			case "1":
				out = true
			default:
				return nil, false
			}
		default:
			return nil, false
		}
	case kind == reflect.Float32 || kind == reflect.Float64:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, false
		}
		out = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		var text string
		switch v := value.(type) {
		case string:
			text = strings.TrimSpace(v)
		case json.Number:
			text = v.String()
		default:
			return nil, false
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f != math.Trunc(f) {
			return nil, false
		}
		out = json.Number(strconv.FormatInt(int64(f), 10))
	}

	if !fits(out, want) {
		return nil, false
	}
	return out, true
}

func kindName(t reflect.Type) string {
	if scalarKind(t) == reflect.Bool {
		return "boolean"
	}
	return "number"
}

func jsonText(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}

// textField reads an envelope field that should be a JSON string. Anything
// else is returned as its JSON text with ok set to false.
func textField(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", true
	}
	var text string
	if raw[0] == '"' && json.Unmarshal(raw, &text) == nil {
		return text, true
	}
	return compactJSON(raw), false
}
