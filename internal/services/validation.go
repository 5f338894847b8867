package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	types "github.com/acmecollege/registrar/internal/domain"
	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func entityValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateEntity checks struct tags and reports failures as constraint
// violations naming the offending columns.
func validateEntity(op string, v interface{}) error {
	err := entityValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.CodeInvalidArgument, op, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return apperr.ConstraintViolation(op, strings.Join(msgs, "; "), err)
}

// requireKeyParts fails fast when a registration has neither an id nor an
// attached relation for one of its key components.
func requireKeyParts(op string, reg *types.CourseRegistration) error {
	var missing []string
	if reg.StudentID == 0 && reg.Student == nil {
		missing = append(missing, "student_id")
	}
	if reg.CourseID == 0 && reg.Course == nil {
		missing = append(missing, "course_id")
	}
	if len(missing) == 0 {
		return nil
	}
	return apperr.ConstraintViolation(op, "composite key incomplete: missing "+strings.Join(missing, ", "), nil)
}
