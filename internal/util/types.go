package util

import "reflect"

// typeName returns the name of the type data points to.
func typeName(data any) string {
	t := reflect.TypeOf(data)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.String()
}

// TypeName returns the name of T.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
