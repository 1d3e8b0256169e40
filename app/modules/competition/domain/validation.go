package competitiondomain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidEntity is returned when struct validation fails.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrGradesOverlap is returned when two grades cover the same dates.
	ErrGradesOverlap = errors.New("grades overlap")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateStruct(kind string, v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s.%s failed %q", ErrInvalidEntity, kind, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidEntity, kind, err)
	}
	return nil
}

// Validate checks the grade's fields.
func (g Grade) Validate() error { return validateStruct("grade", g) }

// Validate checks the series' fields.
func (s Series) Validate() error { return validateStruct("series", s) }

// Validate checks the task's fields.
func (t Task) Validate() error { return validateStruct("task", t) }

// Validate checks the sticker's fields.
func (s Sticker) Validate() error { return validateStruct("sticker", s) }

// Validate checks the event's fields.
func (e Event) Validate() error { return validateStruct("event", e) }

// GradesOverlap returns ErrGradesOverlap when any two grades share a day.
func GradesOverlap(grades []Grade) error {
	for i := range grades {
		for j := i + 1; j < len(grades); j++ {
			a, b := grades[i], grades[j]
			if !a.EndDate.Before(b.StartDate) && !b.EndDate.Before(a.StartDate) {
				return fmt.Errorf("%w: %s and %s", ErrGradesOverlap, a.SchoolYear, b.SchoolYear)
			}
		}
	}
	return nil
}
