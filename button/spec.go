package button

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Spec is the string form of Props, as found in config files, templates and
// CLI flags. Props validates it and converts it to typed Props.
type Spec struct {
	Variant      string `json:"variant" yaml:"variant" validate:"omitempty,variant"`
	Size         string `json:"size" yaml:"size" validate:"omitempty,size"`
	FullWidth    bool   `json:"fullWidth" yaml:"fullWidth"`
	Disabled     bool   `json:"disabled" yaml:"disabled"`
	Loading      bool   `json:"loading" yaml:"loading"`
	LeadingIcon  bool   `json:"leadingIcon" yaml:"leadingIcon"`
	TrailingIcon bool   `json:"trailingIcon" yaml:"trailingIcon"`
	Class        string `json:"class" yaml:"class" validate:"max=4096"`
}

// ValidationError reports a Spec field that does not name a declared member.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := ParseVariant(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, err := ParseSize(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the spec without converting it.
func (s Spec) Validate() error {
	return convertValidationError(validatorInstance().Struct(s))
}

// Props validates the spec and converts it to Props.
func (s Spec) Props() (Props, error) {
	if err := s.Validate(); err != nil {
		return Props{}, err
	}

	// Both parses succeed after validation.
	variant, _ := ParseVariant(s.Variant)
	size, _ := ParseSize(s.Size)

	return Props{
		Variant:      variant,
		Size:         size,
		FullWidth:    s.FullWidth,
		Disabled:     s.Disabled,
		Loading:      s.Loading,
		LeadingIcon:  s.LeadingIcon,
		TrailingIcon: s.TrailingIcon,
		Class:        s.Class,
	}, nil
}

// convertValidationError normalizes validator errors into ValidationErrors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "variant":
			msg = fmt.Sprintf("unknown variant %q (valid: %s)", fe.Value(), joinNames(Variants()))
		case "size":
			msg = fmt.Sprintf("unknown size %q (valid: %s)", fe.Value(), joinNames(Sizes()))
		default:
			msg = fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		}
		return &ValidationError{Field: field, Message: msg, Err: err}
	}

	return &ValidationError{Field: "spec", Message: err.Error(), Err: err}
}

func joinNames[T fmt.Stringer](members []T) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
