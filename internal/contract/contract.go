// Package contract turns raw generated text into typed values. Decoding is
// fail-closed: a reply that is not a complete, well-formed instance of the
// declared shape yields domain.ErrMalformedResponse and never a partial value.
package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// ExtractJSON returns the outermost JSON object in s, from the first '{' to
// the last '}'. Models occasionally wrap JSON in prose or code fences.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object found", domain.ErrMalformedResponse)
	}
	return s[start : end+1], nil
}

// Decode parses text as T. Type mismatches, trailing data and missing
// required fields are rejected. Extra fields the model adds are ignored.
func Decode[T any](text string) (T, error) {
	var zero T

	raw, err := ExtractJSON(text)
	if err != nil {
		return zero, err
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))

	var v T
	if err := dec.Decode(&v); err != nil {
		return zero, fmt.Errorf("%w: decode: %v", domain.ErrMalformedResponse, err)
	}
	if dec.More() {
		return zero, fmt.Errorf("%w: trailing data after object", domain.ErrMalformedResponse)
	}

	if err := validatorInstance().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return zero, fmt.Errorf("%w: field %s failed %q",
				domain.ErrMalformedResponse, verrs[0].Namespace(), verrs[0].Tag())
		}
		return zero, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	return v, nil
}
