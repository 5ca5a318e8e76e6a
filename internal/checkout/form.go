package checkout

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/domain"
)

// Form is what the shopper fills in on the checkout view.
// Card fields are only looked at when Method is domain.PaymentCard.
type Form struct {
	Name      string               `form:"shipping_name" validate:"required"`
	Phone     string               `form:"shipping_phone" validate:"required"`
	Address   string               `form:"shipping_address" validate:"required"`
	District  string               `form:"shipping_district" validate:"required"`
	Reference string               `form:"shipping_reference"`
	Method    domain.PaymentMethod `form:"payment_method" validate:"required,oneof=tarjeta yape plin"`

	CardNumber string `form:"card_number"`
	CardExpiry string `form:"card_expiry"`
	CardCVV    string `form:"card_cvv"`
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed local validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the error for a field, if any.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

// newValidator registers the "digitcount" tag: after stripping spaces and dashes
// the value must be exactly N digits.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("digitcount", func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		digits := StripFormatting(fl.Field().String())
		return len(digits) == want && isDigits(digits)
	})

	return v
}

func validateForm(v *validator.Validate, form Form) error {
	var fields []FieldError

	if err := v.Struct(form); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("v.Struct: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}

	if form.Method == domain.PaymentCard {
		if err := v.Var(form.CardNumber, "required,digitcount=16"); err != nil {
			fields = append(fields, FieldError{Field: "card_number", Message: "Número de tarjeta incompleto"})
		}
		if err := v.Var(form.CardCVV, "required,digitcount=3"); err != nil {
			fields = append(fields, FieldError{Field: "card_cvv", Message: "CVV incompleto"})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obligatorio"
	case "oneof":
		return "Debe ser uno de: " + fe.Param()
	default:
		return "Valor no válido"
	}
}

// StripFormatting removes the spaces and dashes shoppers type into card and phone numbers.
func StripFormatting(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
