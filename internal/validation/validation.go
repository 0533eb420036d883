// Package validation checks catalog drafts against the rules declared in
// their struct tags and reports one message per failing field.
package validation

import (
	"errors"
	"maps"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"petshop/catalog/internal/domain"
)

// FieldErrors maps a JSON field name to its error message. A nil or empty
// value means the draft is acceptable.
type FieldErrors map[string]string

// OK reports whether no field failed.
func (e FieldErrors) OK() bool {
	return len(e) == 0
}

// Clear returns a copy of e without field. Other fields keep their messages.
func (e FieldErrors) Clear(field string) FieldErrors {
	if _, ok := e[field]; !ok {
		return maps.Clone(e)
	}
	out := make(FieldErrors, len(e)-1)
	for k, v := range e {
		if k != field {
			out[k] = v
		}
	}
	return out
}

// Fields returns the failing field names in lexical order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Engine evaluates draft rules. It is safe for concurrent use.
type Engine struct {
	v *validator.Validate
}

func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("trimmin", validateTrimMin)
	_ = v.RegisterValidation("trimmax", validateTrimMax)
	_ = v.RegisterValidation("size_unit", validateSizeUnit)
	_ = v.RegisterValidation("display_order", validateDisplayOrder)

	return &Engine{v: v}
}

// Validate returns the field errors of draft, which must be a struct or a
// pointer to one.
func (e *Engine) Validate(draft any) FieldErrors {
	err := e.v.Struct(draft)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"draft": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

// MinDisplayOrder and MaxDisplayOrder bound a size's display position.
const (
	MinDisplayOrder = 0
	MaxDisplayOrder = 999
)

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateTrimMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func validateTrimMax(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= n
}

func validateSizeUnit(fl validator.FieldLevel) bool {
	return domain.Unit(fl.Field().String()).Valid()
}

func validateDisplayOrder(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return n >= MinDisplayOrder && n <= MaxDisplayOrder
}
