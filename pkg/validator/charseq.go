package validator

import (
	"fmt"
	"reflect"
)

var stringerType = reflect.TypeFor[fmt.Stringer]()

// isCharSequence reports whether values of t can be read as text: string
// kinds, byte and rune slices, fmt.Stringer implementations and pointers to
// any of those.
func isCharSequence(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Slice:
		k := t.Elem().Kind()
		return k == reflect.Uint8 || k == reflect.Int32
	case reflect.Pointer:
		return t.Implements(stringerType) || isCharSequence(t.Elem())
	case reflect.Interface:
		return t.Implements(stringerType)
	}
	return t.Implements(stringerType)
}

// charSequence reads v as text. present is false for nil pointers, nil
// interfaces and invalid values, which every constraint treats as valid.
func charSequence(v reflect.Value) (s string, present bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return "", false
		}
		if v.Kind() == reflect.Pointer && v.Elem().Kind() != reflect.String && v.Type().Implements(stringerType) && v.CanInterface() {
			return v.Interface().(fmt.Stringer).String(), true
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "", false
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Slice:
		if v.IsNil() {
			return "", false
		}
		switch v.Type().Elem().Kind() {
		case reflect.Uint8:
			return string(v.Bytes()), true
		case reflect.Int32:
			runes := make([]rune, v.Len())
			for i := range runes {
				runes[i] = rune(v.Index(i).Int())
			}
			return string(runes), true
		}
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
	}
	return "", false
}
