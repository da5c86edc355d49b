package core

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SensitiveRedacted replaces the value of any field tagged sensitive:"true".
const SensitiveRedacted = "*** Sensitive Data Redacted ***"

var timestampType = reflect.TypeOf(Timestamp{})

// Prettify renders v as a single-line, field-labelled string.
// Fields appear in declaration order, nil fields are omitted and map keys
// are sorted, so equal values always render identically.
func Prettify(v any) string {
	var b strings.Builder
	prettify(&b, reflect.ValueOf(v))
	return b.String()
}

func prettify(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("<nil>")
		return
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == timestampType {
			b.WriteString(v.Interface().(Timestamp).String())
			return
		}
		if t, ok := v.Interface().(time.Time); ok {
			b.WriteString(t.UTC().Format(time.RFC3339Nano))
			return
		}
		b.WriteString("{")
		first := true
		for i := 0; i < v.NumField(); i++ {
			sf := v.Type().Field(i)
			if !sf.IsExported() {
				continue
			}
			fv := v.Field(i)
			if isEmptyField(fv) {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(sf.Name)
			b.WriteString(": ")
			if sf.Tag.Get("sensitive") == "true" {
				b.WriteString(SensitiveRedacted)
				continue
			}
			prettify(b, fv)
		}
		b.WriteString("}")

	case reflect.Slice, reflect.Array:
		b.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			prettify(b, v.Index(i))
		}
		b.WriteString("]")

	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		b.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			prettify(b, k)
			b.WriteString(": ")
			prettify(b, v.MapIndex(k))
		}
		b.WriteString("}")

	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))

	default:
		fmt.Fprint(b, v.Interface())
	}
}

func isEmptyField(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		// Unset enums are empty strings.
		return v.String() == ""
	}
	return false
}
