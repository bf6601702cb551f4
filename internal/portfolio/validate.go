package portfolio

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field formats and that experience and project ids are
// unique.
func Validate(p *Portfolio) error {
	if p == nil {
		return folioerrors.NewValidationError("portfolio", "data table is nil", nil)
	}

	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(p.Experiences))
	for i, exp := range p.Experiences {
		if _, dup := seen[exp.ID]; dup {
			return folioerrors.NewValidationError(fmt.Sprintf("experiences[%d].id", i), fmt.Sprintf("duplicate id %q", exp.ID), nil)
		}
		seen[exp.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(p.Projects))
	for i, proj := range p.Projects {
		if _, dup := seen[proj.ID]; dup {
			return folioerrors.NewValidationError(fmt.Sprintf("projects[%d].id", i), fmt.Sprintf("duplicate id %q", proj.ID), nil)
		}
		seen[proj.ID] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("portfolio", err.Error(), err)
}

// fieldName turns "Portfolio.Projects[1].LiveURL" into "projects[1].liveurl".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
