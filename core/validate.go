package core

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"unicode/utf8"
)

// Patterns holds the named regular expressions referenced by `pattern` tags.
// Validation is advisory; the service remains the authority.
var Patterns = map[string]*regexp.Regexp{
	"ChimeArn":     regexp.MustCompile(`^arn:[a-z0-9-\.]{1,63}:[a-z0-9-\.]{0,63}:[a-z0-9-\.]{0,63}:[a-z0-9-\.]{0,63}:[^/].*$`),
	"MessageId":    regexp.MustCompile(`^[-_a-zA-Z0-9]*$`),
	"SubChannelId": regexp.MustCompile(`^[-_a-zA-Z0-9]*$`),
	"ChannelId":    regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9\:\-\_\.\@]{0,62}[A-Za-z0-9])?$`),
	"ResourceName": regexp.MustCompile(`^[\t\n\r\x{20}-\x{7E}\x{85}\x{A0}-\x{D7FF}\x{E000}-\x{FFFD}\x{10000}-\x{10FFFF}]*$`),
	"CallbackId":   regexp.MustCompile(`^[-_:A-Za-z0-9]*$`),
	"NextToken":    regexp.MustCompile(`(?s)^.*$`),
}

var validatableType = reflect.TypeOf((*interface{ Validate() error })(nil)).Elem()
var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// ValidateStruct checks v against its `required`, `min`, `max`, `pattern`,
// `elemmin` and `elemmax` struct tags, descending into nested shapes,
// slices and maps. It returns nil or an *InvalidParamsError.
//
// For strings and collections min/max bound the length; for integers they
// bound the value. On a string slice, pattern, elemmin and elemmax apply
// to every element.
func ValidateStruct(context string, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validate %s: expected struct, got %s", context, rv.Kind())
	}

	errs := &InvalidParamsError{Context: context}
	walkStruct(errs, "", rv)
	if errs.Len() > 0 {
		return errs
	}
	return nil
}

func walkStruct(errs *InvalidParamsError, prefix string, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if prefix != "" {
			name = prefix + "." + sf.Name
		}
		checkField(errs, name, sf.Tag, rv.Field(i))
	}
}

func checkField(errs *InvalidParamsError, name string, tag reflect.StructTag, fv reflect.Value) {
	if tag.Get("required") == "true" && isUnset(fv) {
		errs.Add(name, ParamRequired, "missing required field")
		return
	}

	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return
		}
		checkField(errs, name, stripRequired(tag), fv.Elem())

	case reflect.String:
		if fv.String() == "" && fv.Type() != reflect.TypeOf("") {
			// Unset enum.
			return
		}
		checkString(errs, name, tag.Get("min"), tag.Get("max"), tag.Get("pattern"), fv.String())
		if fv.Type().Implements(enumType) {
			e := fv.Interface().(Enum)
			if !e.IsKnown() {
				errs.Add(name, ParamEnum, fmt.Sprintf("invalid %s value %q", e.EnumName(), fv.String()))
			}
		}

	case reflect.Int32, reflect.Int64, reflect.Int:
		n := fv.Int()
		if minV, ok := parseBound(tag.Get("min")); ok && n < minV {
			errs.Add(name, ParamMinValue, fmt.Sprintf("minimum field value of %d", minV))
		}
		if maxV, ok := parseBound(tag.Get("max")); ok && n > maxV {
			errs.Add(name, ParamMaxValue, fmt.Sprintf("maximum field value of %d", maxV))
		}

	case reflect.Slice:
		if fv.IsNil() {
			return
		}
		checkLen(errs, name, tag.Get("min"), tag.Get("max"), fv.Len())
		for j := 0; j < fv.Len(); j++ {
			elemName := fmt.Sprintf("%s[%d]", name, j)
			ev := fv.Index(j)
			if ev.Kind() == reflect.String {
				checkString(errs, elemName, tag.Get("elemmin"), tag.Get("elemmax"), tag.Get("pattern"), ev.String())
				continue
			}
			descend(errs, elemName, ev)
		}

	case reflect.Map:
		if fv.IsNil() {
			return
		}
		checkLen(errs, name, tag.Get("min"), tag.Get("max"), fv.Len())
		keys := fv.MapKeys()
		sort.Slice(keys, func(a, b int) bool { return keys[a].String() < keys[b].String() })
		for _, k := range keys {
			elemName := fmt.Sprintf("%s[%s]", name, k.String())
			if k.Kind() == reflect.String {
				checkString(errs, elemName, tag.Get("elemmin"), tag.Get("elemmax"), "", k.String())
			}
			descend(errs, elemName, fv.MapIndex(k))
		}

	case reflect.Struct:
		descend(errs, name, fv)
	}
}

// descend validates a nested shape. Only types that expose Validate are
// walked, so value types such as Timestamp are left alone.
func descend(errs *InvalidParamsError, name string, v reflect.Value) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	if !v.Type().Implements(validatableType) && !reflect.PointerTo(v.Type()).Implements(validatableType) {
		return
	}
	walkStruct(errs, name, v)
}

func checkString(errs *InvalidParamsError, name, minTag, maxTag, patternTag, s string) {
	checkLen(errs, name, minTag, maxTag, utf8.RuneCountInString(s))
	if patternTag == "" {
		return
	}
	re, ok := Patterns[patternTag]
	if !ok {
		errs.Add(name, ParamPattern, fmt.Sprintf("unknown pattern %s", patternTag))
		return
	}
	if !re.MatchString(s) {
		errs.Add(name, ParamPattern, fmt.Sprintf("value does not match pattern %s", patternTag))
	}
}

func checkLen(errs *InvalidParamsError, name, minTag, maxTag string, n int) {
	if minV, ok := parseBound(minTag); ok && int64(n) < minV {
		errs.Add(name, ParamMinLen, fmt.Sprintf("minimum field size of %d", minV))
	}
	if maxV, ok := parseBound(maxTag); ok && int64(n) > maxV {
		errs.Add(name, ParamMaxLen, fmt.Sprintf("maximum field size of %d", maxV))
	}
}

func isUnset(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return fv.IsNil()
	case reflect.String:
		return fv.String() == ""
	}
	return false
}

func stripRequired(tag reflect.StructTag) reflect.StructTag {
	// required has already been checked on the pointer; the pointee only
	// needs its bounds.
	return reflect.StructTag(fmt.Sprintf(`min:%q max:%q pattern:%q elemmin:%q elemmax:%q`,
		tag.Get("min"), tag.Get("max"), tag.Get("pattern"), tag.Get("elemmin"), tag.Get("elemmax")))
}

func parseBound(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
