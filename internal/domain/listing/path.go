package listing

import (
	"reflect"
	"strings"
	"time"
)

// ResolvePath walks a dotted path ("material.name") through structs,
// maps and pointers and returns the value at the end. The second return
// is false when any segment is missing or a pointer on the way is nil;
// callers treat that as "field absent", never as an error.
func ResolvePath(item any, path string) (any, bool) {
	v := reflect.ValueOf(item)
	for _, segment := range strings.Split(path, ".") {
		var ok bool
		v, ok = resolveSegment(v, segment)
		if !ok {
			return nil, false
		}
	}
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func resolveSegment(v reflect.Value, segment string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if !reflect.TypeOf(segment).ConvertibleTo(v.Type().Key()) {
			return reflect.Value{}, false
		}
		elem := v.MapIndex(reflect.ValueOf(segment).Convert(v.Type().Key()))
		if !elem.IsValid() {
			return reflect.Value{}, false
		}
		return elem, true

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if jsonFieldName(field) == segment || strings.EqualFold(field.Name, segment) {
				return v.Field(i), true
			}
		}
		return reflect.Value{}, false
	}

	return reflect.Value{}, false
}

// jsonFieldName returns the field's json tag name, or "" when untagged
// or explicitly skipped.
func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// StringAt resolves the path and coerces it to a string. Missing or
// non-string values become "".
func StringAt(item any, path string) string {
	val, ok := ResolvePath(item, path)
	if !ok {
		return ""
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return ""
}

// NumberAt resolves the path and coerces numeric kinds to float64.
// Missing or non-numeric values become 0.
func NumberAt(item any, path string) float64 {
	val, ok := ResolvePath(item, path)
	if !ok {
		return 0
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return 0
}

// TimeAt resolves the path to a time.Time. Missing or non-time values
// become the zero time.
func TimeAt(item any, path string) time.Time {
	val, ok := ResolvePath(item, path)
	if !ok {
		return time.Time{}
	}
	switch t := val.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}
