package weblog

import (
	"fmt"
	"reflect"
	"strings"
)

// Dump logs the contents of the provided value at DEBUG level. Structs are
// rendered as "Type{field=value ...}" over their exported fields; pointers
// are followed; everything else falls back to its default formatting.
func (s *Service) Dump(v interface{}) {
	if !s.initialized.Load() {
		return
	}
	s.Debug(formatDump(v))
}

func formatDump(v interface{}) string {
	if v == nil {
		return "<nil>"
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", rv.Interface())
	}

	rt := rv.Type()
	var buf strings.Builder
	buf.WriteString(rt.Name())
	buf.WriteByte('{')

	wrote := false
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != emptyString { // unexported
			continue
		}
		if wrote {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s=%v", field.Name, rv.Field(i).Interface())
		wrote = true
	}

	buf.WriteByte('}')
	return buf.String()
}
