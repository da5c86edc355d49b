// Package shapetest fills request, response and value shapes with
// deterministic data and checks the properties every shape must hold.
package shapetest

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

const maxDepth = 8

var timestampType = reflect.TypeOf(core.Timestamp{})

// Fill sets every exported field reachable from v, which must be a
// pointer to a struct. Shapes filled with the same seed are equal; shapes
// filled with different seeds differ in every field.
func Fill(v any, seed int) {
	fill(reflect.ValueOf(v).Elem(), seed, 0)
}

// FillField refills only the i-th field of the struct v points to.
func FillField(v any, i, seed int) {
	fill(reflect.ValueOf(v).Elem().Field(i), seed, 0)
}

func fill(v reflect.Value, seed, depth int) {
	if depth > maxDepth {
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		p := reflect.New(v.Type().Elem())
		fill(p.Elem(), seed, depth+1)
		v.Set(p)
	case reflect.Struct:
		if v.Type() == timestampType {
			v.Set(reflect.ValueOf(core.Timestamp{Time: time.Unix(int64(1_700_000_000+seed), 0).UTC()}))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				fill(v.Field(i), seed, depth+1)
			}
		}
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), 1, 1)
		fill(s.Index(0), seed, depth+1)
		v.Set(s)
	case reflect.Map:
		m := reflect.MakeMapWithSize(v.Type(), 1)
		key := reflect.New(v.Type().Key()).Elem()
		fill(key, seed, depth+1)
		val := reflect.New(v.Type().Elem()).Elem()
		fill(val, seed, depth+1)
		m.SetMapIndex(key, val)
		v.Set(m)
	case reflect.String:
		v.SetString(stringFor(v, seed))
	case reflect.Bool:
		v.SetBool(seed%2 == 1)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(seed))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(seed))
	}
}

// stringFor returns a wire value for enums and a plain value otherwise.
// An enum with fewer variants than seed gets the empty value so that two
// seeds still differ.
func stringFor(v reflect.Value, seed int) string {
	values := v.MethodByName("Values")
	if !values.IsValid() {
		return fmt.Sprintf("v%d", seed)
	}
	all := values.Call(nil)[0]
	if seed-1 < all.Len() {
		return all.Index(seed - 1).String()
	}
	return ""
}

// copyUnserialized copies the fields that never appear in a JSON body
// (`json:"-"`) from src to dst.
func copyUnserialized(dst, src any) {
	d, s := reflect.ValueOf(dst).Elem(), reflect.ValueOf(src).Elem()
	for i := 0; i < d.NumField(); i++ {
		if d.Type().Field(i).Tag.Get("json") == "-" {
			d.Field(i).Set(s.Field(i))
		}
	}
}

// Check verifies the value semantics of the shape built by newShape:
// every field reads back what was set, equally built shapes are equal and
// render identically, the JSON body round trips, and changing any single
// field breaks equality.
func Check(t *testing.T, newShape func() any) {
	t.Helper()

	a, b := newShape(), newShape()
	Fill(a, 1)
	Fill(b, 1)

	rv := reflect.ValueOf(a).Elem()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Type().Field(i).IsExported() {
			assert.False(t, rv.Field(i).IsZero(), "field %s not set", rv.Type().Field(i).Name)
		}
	}

	assert.True(t, core.Equal(a, b), "equally filled shapes differ")
	assert.Equal(t, core.Prettify(a), core.Prettify(b))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	c := newShape()
	require.NoError(t, json.Unmarshal(data, c), "decode %s", data)
	copyUnserialized(c, a)
	assert.True(t, core.Equal(a, c), "round trip changed the shape: %s", data)

	for i := 0; i < rv.NumField(); i++ {
		f := rv.Type().Field(i)
		if !f.IsExported() {
			continue
		}
		d := newShape()
		Fill(d, 1)
		FillField(d, i, 2)
		assert.False(t, core.Equal(a, d), "changing %s kept the shapes equal", f.Name)
	}
}
