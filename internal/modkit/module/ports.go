package module

import "reflect"

// PortsOf finds a T in m's port bundle
// the bundle itself may be a T, or a struct (or pointer to one) with an exported T field;
// the first matching field wins
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if v, ok := bundle.(T); ok {
		return v, true
	}
	for _, f := range exportedFields(bundle) {
		if v, ok := f.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// Collect returns every T exposed by mods, in module order
// meta uses it to gather the readiness checks of the upstream modules
func Collect[T any](mods ...Module) []T {
	var out []T
	for _, m := range mods {
		if v, ok := PortsOf[T](m); ok {
			out = append(out, v)
		}
	}
	return out
}

// exportedFields returns the exported field values of a struct or non nil struct pointer
func exportedFields(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	out := make([]any, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		if f := rv.Field(i); f.CanInterface() {
			out = append(out, f.Interface())
		}
	}
	return out
}
