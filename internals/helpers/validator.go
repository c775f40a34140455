// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance global (thread-safe, cache struct info)
var Validate = validator.New()

// ValidateStruct menjalankan validasi tag dan mengubah hasilnya ke map field → pesan.
// Return nil kalau valid.
func ValidateStruct(s any) map[string][]string {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string][]string{"_": {err.Error()}}
		}
		out := make(map[string][]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
		return out
	}
	return nil
}
