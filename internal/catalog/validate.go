package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/terra-clan/internship-engine/internal/models"
)

// ValidationError lists every problem found in a catalog. A catalog with any problem is rejected.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// newValidator builds a validator that knows the closed tag sets and reports yaml field names
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("sector", func(fl validator.FieldLevel) bool {
		return models.Sector(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return models.Location(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("education_requirement", func(fl validator.FieldLevel) bool {
		return models.EducationLevel(fl.Field().String()).IsValidRequirement()
	})
	_ = v.RegisterValidation("skill", func(fl validator.FieldLevel) bool {
		return models.Skill(fl.Field().String()).IsValid()
	})

	return v
}

// validateRecords checks every record and the catalog-wide invariants
func validateRecords(records []models.Internship) error {
	verr := &ValidationError{}

	if len(records) == 0 {
		verr.add("catalog contains no internships")
		return verr
	}

	v := newValidator()
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		label := fmt.Sprintf("record %d (id %q)", i, rec.ID)

		if err := v.Struct(rec); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				verr.add("%s: %v", label, err)
				continue
			}
			for _, fe := range fieldErrs {
				if fe.Tag() == "required" {
					verr.add("%s: missing required field %s", label, fe.Field())
				} else {
					verr.add("%s: unknown %s value %q", label, fe.Field(), fe.Value())
				}
			}
		}

		if rec.Location.IsRemote() && !rec.IsRemote {
			verr.add("%s: location is remote but is_remote is false", label)
		}

		if rec.ID != "" {
			if first, dup := seen[rec.ID]; dup {
				verr.add("%s: duplicate id, first defined by record %d", label, first)
			} else {
				seen[rec.ID] = i
			}
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}
