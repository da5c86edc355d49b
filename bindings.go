package chimemessaging

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

// boundField is an input field carried outside the JSON body.
type boundField struct {
	location string
	name     string
	value    string
}

// ResolvePath fills the operation's URI template from the input's
// location:"uri" fields. Label values are path-escaped, so an ARN's
// slashes stay inside a single segment.
func ResolvePath(op Operation, in Input) (string, error) {
	labels := map[string]string{}
	for _, f := range boundFields(in) {
		if f.location == "uri" {
			labels[f.name] = f.value
		}
	}

	var b strings.Builder
	rest := op.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%s: unterminated label in path %q", op.Name, op.Path)
		}
		end += open

		label := rest[open+1 : end]
		value, ok := labels[label]
		if !ok || value == "" {
			return "", fmt.Errorf("%s: missing value for path label %q", op.Name, label)
		}
		escaped, err := runtime.StyleParamWithLocation("simple", false, label, runtime.ParamLocationPath, value)
		if err != nil {
			return "", fmt.Errorf("%s: encoding path label %q: %w", op.Name, label, err)
		}

		b.WriteString(rest[:open])
		b.WriteString(escaped)
		rest = rest[end+1:]
	}
	return b.String(), nil
}

// QueryValues returns the operation's static query merged with the
// input's location:"querystring" fields. Unset fields are omitted.
func QueryValues(op Operation, in Input) url.Values {
	q := op.StaticQueryValues()
	for _, f := range boundFields(in) {
		if f.location == "querystring" {
			q.Set(f.name, f.value)
		}
	}
	return q
}

// Headers returns the input's location:"header" fields.
func Headers(in Input) http.Header {
	h := http.Header{}
	for _, f := range boundFields(in) {
		if f.location == "header" {
			h.Set(f.name, f.value)
		}
	}
	return h
}

// RequestURI combines ResolvePath and QueryValues.
func RequestURI(op Operation, in Input) (string, error) {
	path, err := ResolvePath(op, in)
	if err != nil {
		return "", err
	}
	if q := QueryValues(op, in); len(q) > 0 {
		return path + "?" + q.Encode(), nil
	}
	return path, nil
}

func boundFields(in Input) []boundField {
	v := reflect.ValueOf(in)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var fields []boundField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		loc := sf.Tag.Get("location")
		if loc == "" {
			continue
		}
		s, ok := formatBound(v.Field(i))
		if !ok {
			continue
		}
		fields = append(fields, boundField{location: loc, name: sf.Tag.Get("locationName"), value: s})
	}
	return fields
}

func formatBound(fv reflect.Value) (string, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return "", false
		}
		if ts, ok := fv.Interface().(*core.Timestamp); ok {
			return ts.UTC().Format(time.RFC3339), true
		}
		fv = fv.Elem()
	}
	switch fv.Kind() {
	case reflect.String:
		if fv.Len() == 0 {
			return "", false
		}
		return fv.String(), true
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), true
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), true
	}
	return "", false
}
