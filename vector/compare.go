// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Identity ordering used when no comparator is set. References (pointers,
// maps, channels, funcs, slices) order by address; scalars by value;
// composites lexicographically. It goes through reflect, so hot paths should
// install a typed comparator.

package vector

import (
	"cmp"
	"reflect"
	"strings"
)

// Identity orders a and b by identity.
func Identity[T any](a, b T) int {
	return compareValues(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func compareValues(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return cmp.Compare(a.Pointer(), b.Pointer())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ca), real(cb)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ca), imag(cb))
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return compareBool(a.Bool(), b.Bool())
	case reflect.Interface:
		return compareInterfaces(a, b)
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if c := compareValues(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if c := compareValues(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

// compareInterfaces puts nil first, then groups by dynamic type.
func compareInterfaces(a, b reflect.Value) int {
	switch {
	case a.IsNil() && b.IsNil():
		return 0
	case a.IsNil():
		return -1
	case b.IsNil():
		return 1
	}
	ea, eb := a.Elem(), b.Elem()
	if ea.Type() != eb.Type() {
		return strings.Compare(ea.Type().String(), eb.Type().String())
	}
	return compareValues(ea, eb)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
