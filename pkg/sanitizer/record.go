package sanitizer

import (
	"iter"
	"strings"
)

// Field keys recognized in raw rows. Extra keys are ignored.
const (
	FieldEmail = "email"
	FieldName  = "name"
)

// Row is a raw attendee row as it arrives from an import source: untyped,
// with optional fields. Missing or non-string values coerce to "".
type Row map[string]any

// Record is a sanitized attendee row. Both fields have been through
// NormalizeIdentity.
type Record struct {
	Email string
	Name  string
}

// SanitizeRecords pipes raw rows through identity normalization and yields
// the clean records. Rows whose sanitized email is empty or lacks "@" are
// dropped without error. The sequence is lazy and single-pass: it pulls
// from rows as it is consumed and cannot be re-iterated without
// re-supplying the source.
func SanitizeRecords(rows iter.Seq[Row]) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for row := range rows {
			rec := Record{
				Email: NormalizeIdentity(row.stringField(FieldEmail)),
				Name:  NormalizeIdentity(row.stringField(FieldName)),
			}
			if rec.Email == "" || !strings.Contains(rec.Email, "@") {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func (r Row) stringField(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
