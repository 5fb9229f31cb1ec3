package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Email pattern from RFC 5322, restricted: | and ' are excluded.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_!#$%&*+/=?` + "`" + `{}~^.-]+@[a-zA-Z0-9.-]+$`)

// Phone accepts flexible international formats and the empty string.
var phonePattern = regexp.MustCompile(`^((\+\d{1,3}( )?)?((\(\d{3}\))|\d{3})[- .]?\d{3}[- .]?\d{4})?$`)

// fieldMessages maps a request field and the violated rule to the exact
// human-readable message reported to clients. The field key is the json
// name of the leaf field; names are unique across the request tree.
var fieldMessages = map[string]map[string]string{
	"firstName": {
		"required": "First name is required.",
		"max":      "First name cannot be greater than 25 characters.",
	},
	"lastName": {
		"required": "Last name is required.",
		"max":      "Last name cannot be greater than 25 characters.",
	},
	"email": {
		"required":     "Email is required.",
		"email_format": "Email format is invalid.",
	},
	"phone": {
		"phone_format": "Phone number format is invalid. Valid formats include (but are not limited to) " +
			"2134541324, (213) 454-1324, and +111 (213) 454-1324.",
	},
	"address": {
		"required": "Address is required.",
	},
	"orderLines": {
		"required": "Order lines is required.",
		"min":      "Order lines is required.",
	},
	"tax": {
		"required": "Tax is required.",
		"gte":      "Tax must be positive or zero.",
	},
	"shipping": {
		"required": "Shipping is required.",
		"gte":      "Shipping must be positive or zero.",
	},
	"status": {
		"oneof": "Status must be one of PROCESSING, COMPLETED, or CANCELED.",
	},
	"address1": {
		"required": "Address1 is required.",
		"max":      "Address1 must be less than 50 characters, inclusive.",
	},
	"address2": {
		"max": "Address2 must be less than 25 characters, inclusive.",
	},
	"city": {
		"required": "City is required.",
		"max":      "City must be between 1 and 25 characters, inclusive.",
	},
	"state": {
		"required": "State is required.",
		"len":      "State must be 2 characters.",
	},
	"zip": {
		"required": "Zip code is required.",
		"min":      "Zip code must be between 5 and 10 characters, inclusive.",
		"max":      "Zip code must be between 5 and 10 characters, inclusive.",
	},
	"brand": {
		"required": "Brand is required.",
		"max":      "Brand must be between 1 and 25 characters, inclusive.",
	},
	"model": {
		"required": "Model is required.",
		"max":      "Model must be between 1 and 25 characters, inclusive.",
	},
	"cost": {
		"required": "Cost is required.",
		"gte":      "Cost must be positive or zero.",
		"decimal2": "Cost cannot have more than 2 decimal places.",
	},
	"quantity": {
		"required": "Quantity is required.",
		"gte":      "Quantity must be positive or zero.",
	},
}

// RequestValidator validates inbound order payloads and reports failures
// as a field-path → message map. Nested fields use dotted paths and array
// elements bracketed indexes (address.city, orderLines[0].cost).
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator with the order-specific rules
// registered: json tag field names, decimal-aware numeric comparisons and
// the email/phone format patterns.
func NewRequestValidator() *RequestValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimals compare through their float value so gte=0 works on them
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if value, ok := field.Interface().(decimal.Decimal); ok {
			return value.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	// The custom type func above hands validations the float value, so the
	// fractional-digit check reads the original decimal off the parent
	// struct instead.
	_ = v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
		parent := fl.Parent()
		if parent.Kind() == reflect.Ptr {
			parent = parent.Elem()
		}
		field := parent.FieldByName(fl.StructFieldName())
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}
			field = field.Elem()
		}
		value, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return true
		}
		return value.Exponent() >= -2
	})

	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_format", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks the request and returns nil or the field→message map.
func (rv *RequestValidator) Validate(request *OrderRequest) map[string]string {
	err := rv.validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"request": err.Error()}
	}

	report := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		report[fieldPath(fieldError.Namespace())] = messageFor(fieldError)
	}
	return report
}

// fieldPath strips the root struct name from the validator namespace,
// leaving the client-facing path: "OrderRequest.orderLines[0].cost"
// becomes "orderLines[0].cost".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(fieldError validator.FieldError) string {
	if byTag, ok := fieldMessages[fieldError.Field()]; ok {
		if message, ok := byTag[fieldError.Tag()]; ok {
			return message
		}
	}
	return "Value is invalid."
}
