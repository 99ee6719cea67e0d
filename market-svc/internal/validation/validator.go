package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"sort"
	"strings"

	"venue-market/market-svc/internal/domain"

	validatorv10 "github.com/go-playground/validator/v10"
)

func New() *validatorv10.Validate {
	v := validatorv10.New()

	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// DecodeAndValidate reads a JSON body into out and runs struct validation.
// Every failure comes back as a domain validation error.
func DecodeAndValidate(body io.Reader, out interface{}, v *validatorv10.Validate) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return domain.Invalid("Invalid JSON format: %s", err.Error())
	}
	if err := v.Struct(out); err != nil {
		return domain.Invalid("Validation failed: %s", describe(err))
	}
	return nil
}

func describe(err error) string {
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields = append(fields, field+" must satisfy "+rule)
	}
	sort.Strings(fields)
	return strings.Join(fields, "; ")
}
