package presenter

import (
	"fmt"
	"reflect"
	"strings"
)

// Predicate decides whether item should be shown for query
type Predicate[T any] func(item T, query string) bool

// DefaultFilter matches when the item's text contains the query after
// both are trimmed and upper-cased. Nil items never match.
func DefaultFilter[T any](item T, query string) bool {
	text, ok := textOf(item)
	if !ok {
		return false
	}
	return strings.Contains(normalize(text), normalize(query))
}

// AnyField builds a predicate that matches when any of the extracted
// fields matches the query with the DefaultFilter normalization.
func AnyField[T any](fields ...func(T) string) Predicate[T] {
	return func(item T, query string) bool {
		q := normalize(query)
		for _, field := range fields {
			if strings.Contains(normalize(field(item)), q) {
				return true
			}
		}
		return false
	}
}

// Text returns the textual form used by DefaultFilter: String() for
// fmt.Stringer values, fmt.Sprint otherwise. Nil yields "".
func Text[T any](item T) string {
	text, _ := textOf(item)
	return text
}

func textOf[T any](item T) (string, bool) {
	v := any(item)
	if v == nil {
		return "", false
	}
	// Typed nils too: a nil *Person must not reach its String method
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", false
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return fmt.Sprint(v), true
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
