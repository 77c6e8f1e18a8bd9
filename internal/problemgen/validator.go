package problemgen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a generated question. Implementations must be
// stateless and safe for concurrent use.
type Validator interface {
	// Name is a short identifier for logs, e.g. "structural".
	Name() string

	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question was dropped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(questionStructLevel, Question{})
	return v
}

func questionStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		sl.ReportError(q.CorrectIndex, "correctAnswerIndex", "CorrectIndex", "inrange", "")
	}
}

// StructuralValidator enforces field presence, lengths, the option count,
// the difficulty enum and that the correct index points at an option.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	return &ValidationError{Validator: v.Name(), Message: describe(err)}
}

// describe flattens validator errors into one readable line.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		var m string
		switch fe.Tag() {
		case "required":
			m = fe.Field() + " is required"
		case "min":
			m = fe.Field() + " must have at least " + fe.Param() + " entries"
		case "max":
			m = fe.Field() + " must have at most " + fe.Param() + " entries"
		case "unique":
			m = fe.Field() + " must not repeat"
		case "oneof":
			m = fe.Field() + " must be one of " + fe.Param()
		case "inrange":
			m = fe.Field() + " is out of range"
		default:
			m = fe.Field() + " failed " + fe.Tag()
		}
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; ")
}
