// Package structured decodes JSON payloads that a language model was asked,
// but not guaranteed, to produce.
package structured

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"objection-handler/pkg/log"
)

// ErrMalformed is wrapped by every decode failure.
var ErrMalformed = errors.New("malformed model output")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode strictly parses text into a fresh T and runs `validate` struct tags
// on the result. Surrounding whitespace is ignored; anything else that is not
// exactly one non-null JSON value (code fences, prose, trailing data) is an
// error. Fields the model must supply should be pointers tagged `required`,
// since a missing key otherwise decodes to a valid zero value.
func Decode[T any](text string) (T, error) {
	var out T

	var raw json.RawMessage
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(text)))
	if err := dec.Decode(&raw); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return out, fmt.Errorf("%w: trailing data after JSON value", ErrMalformed)
	}
	if bytes.Equal(raw, []byte("null")) {
		return out, fmt.Errorf("%w: null value", ErrMalformed)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := validateValue(out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return out, nil
}

// ParseJSON decodes text like Decode. On any failure it logs a warning
// tagged with stage and returns defaultFn(); the second result reports
// whether the default was used. It never returns an error.
func ParseJSON[T any](ctx context.Context, l log.Logger, stage string, text string, defaultFn func() T) (T, bool) {
	out, err := Decode[T](text)
	if err != nil {
		if l != nil {
			l.Warn(ctx, "structured output fallback",
				"stage", stage,
				"error", err.Error(),
				"raw", truncate(text, 200),
			)
		}
		return defaultFn(), true
	}
	return out, false
}

func validateValue(v any) error {
	err := validate.Struct(v)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// Not a struct; nothing to validate.
		return nil
	}
	return err
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
