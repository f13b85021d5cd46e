package models

// SerializeAll is a small helper for list endpoints; it never returns nil.
func SerializeAll[M any, R any](rows []M, serialize func(*M) R) []R {
	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, serialize(&rows[i]))
	}
	return out
}
