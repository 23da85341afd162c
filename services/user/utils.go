package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Availability hours are whole hours of the day a teacher can be booked.
const (
	MinAvailableHour = 7
	MaxAvailableHour = 20
)

var validate = validator.New()

type identityFields struct {
	Name      string `validate:"required"`
	Email     string `validate:"required"`
	Cellphone string `validate:"required"`
}

type availabilityRule struct {
	Day   string `validate:"oneof=sunday monday tuesday wednesday thursday friday saturday"`
	Hours []int  `validate:"dive,min=7,max=20"`
}

// firstMissingField reports the first required identity field left empty.
func firstMissingField(name, email, cellphone string) string {
	err := validate.Struct(identityFields{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Cellphone: strings.TrimSpace(cellphone),
	})
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return strings.ToLower(verrs[0].Field())
	}
	return ""
}

// normalizeAvailableHours lower-cases weekday keys, merges duplicates and
// checks every hour lies within [MinAvailableHour, MaxAvailableHour].
func normalizeAvailableHours(in map[string][]int) (map[string][]int, error) {
	out := make(map[string][]int, len(in))
	for day, hours := range in {
		key := strings.ToLower(strings.TrimSpace(day))
		if err := validate.Struct(availabilityRule{Day: key, Hours: hours}); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Day" {
				return nil, fmt.Errorf("%q is not a weekday", day)
			}
			return nil, fmt.Errorf("available hours for %s must be between %d and %d", key, MinAvailableHour, MaxAvailableHour)
		}
		if out[key] == nil {
			out[key] = []int{}
		}
		out[key] = append(out[key], hours...)
	}
	return out, nil
}
