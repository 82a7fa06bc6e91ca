// file: internals/helpers/relation.go
package helper

// FirstOrNil flattens join results that may arrive as a slice into a single
// related object, so feature code never sees array-or-object ambiguity.
func FirstOrNil[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// PtrTo is a small convenience for optional DTO fields.
func PtrTo[T any](v T) *T { return &v }
