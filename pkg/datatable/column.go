package datatable

import (
	"reflect"
	"strings"
)

// Column describes one table column. The accessor is a dot-separated key
// path resolved against the row (struct fields by json tag or name, or map
// keys). Render, when set, overrides the accessor for display and export.
type Column[T any] struct {
	Label    string
	Accessor string
	Render   func(row T) string
	NoExport bool
}

// Value resolves the column's cell value for a row.
func (c Column[T]) Value(row T) interface{} {
	if c.Render != nil {
		return c.Render(row)
	}
	return Resolve(row, c.Accessor)
}

// Resolve walks a dot-separated key path into a value. Rows are treated
// opaquely: struct fields match on json tag first, then field name
// (case-insensitive); maps match on key. Missing segments resolve to nil.
func Resolve(v interface{}, path string) interface{} {
	if path == "" {
		return nil
	}
	current := v
	for _, segment := range strings.Split(path, ".") {
		current = resolveSegment(current, segment)
		if current == nil {
			return nil
		}
	}
	return current
}

func resolveSegment(v interface{}, key string) interface{} {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		mv := rv.MapIndex(reflect.ValueOf(key))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			if jsonName(field) == key || strings.EqualFold(field.Name, key) {
				return rv.Field(i).Interface()
			}
		}
		return nil
	default:
		return nil
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
