// file: internals/helpers/validate.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ValidationMap flattens validator.v10 errors into field -> messages,
// the shape JsonValidationError expects.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
