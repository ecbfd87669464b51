package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every Precinct; validator caches struct metadata per instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// gt and gte let +Inf through; finite rejects Inf and NaN.
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Precinct is the immutable description of one polling place for one election day.
// The simulator reads it by value and never mutates it.
type Precinct struct {
	Name                   string  `yaml:"name" validate:"required"`
	HoursOpen              float64 `yaml:"hours_open" validate:"finite,gt=0"`           // polls close at HoursOpen*60 minutes
	MaxNumVoters           int     `yaml:"num_voters" validate:"gt=0"`                  // cap on voters admitted in a day
	NumBooths              int     `yaml:"num_booths" validate:"gt=0"`                  // concurrent voters
	ArrivalRate            float64 `yaml:"arrival_rate" validate:"finite,gt=0"`         // voters per minute
	VotingDurationRate     float64 `yaml:"voting_duration_rate" validate:"finite,gt=0"` // 1/mean split-ticket duration
	PercentStraightTicket  float64 `yaml:"percent_straight_ticket" validate:"finite,gte=0,lte=1"`
	StraightTicketDuration float64 `yaml:"straight_ticket_duration" validate:"finite,gte=0"` // minutes
}

// ClosingTime returns the minute at which the polls close.
func (p Precinct) ClosingTime() float64 {
	return p.HoursOpen * 60
}

// WithPercentStraightTicket returns a copy of p with a different straight-ticket fraction.
func (p Precinct) WithPercentStraightTicket(percent float64) Precinct {
	p.PercentStraightTicket = percent
	return p
}

// Validate reports every invalid field of p in a single ErrInvalidConfiguration error.
func (p Precinct) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: precinct %q: %v", ErrInvalidConfiguration, p.Name, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s=%v fails %s%s", fe.Field(), fe.Value(), fe.Tag(), tagParam(fe)))
	}
	return fmt.Errorf("%w: precinct %q: %s", ErrInvalidConfiguration, p.Name, strings.Join(fields, "; "))
}

func tagParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return ""
	}
	return "=" + fe.Param()
}
