package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/bracketlab/bracket-stats/internal/models"
)

var validate = validator.New()

// ValidationError collects every problem found in a dataset
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid bracket dataset: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the dataset invariants: known region keys, winners that
// took part in their matchup, probabilities in [0,1] and seeds that parse.
func Validate(b *models.Bracket) error {
	if b == nil {
		return &ValidationError{Err: errors.New("bracket is nil")}
	}

	var errs []error
	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			// The validator walks FirstRound in map order
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			slices.Sort(msgs)
			for _, msg := range msgs {
				errs = append(errs, errors.New(msg))
			}
		} else {
			errs = append(errs, err)
		}
	}

	// Regions in display order, then unknown keys sorted, so the joined
	// message is the same on every run
	for _, region := range models.Regions {
		for i, m := range b.FirstRound[region] {
			if err := validateMatchup(m); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d] %s: %w", region, i, m.Name(), err))
			}
		}
	}
	var unknown []string
	for region := range b.FirstRound {
		if _, ok := models.ParseRegion(string(region)); !ok {
			unknown = append(unknown, string(region))
		}
	}
	slices.Sort(unknown)
	for _, region := range unknown {
		errs = append(errs, fmt.Errorf("unknown region %q", region))
	}

	if _, err := b.Champion.Seed.Number(); err != nil {
		errs = append(errs, fmt.Errorf("champion: %w", err))
	}
	if math.IsNaN(b.Champion.Probability) {
		errs = append(errs, errors.New("champion: probability is NaN"))
	}

	if len(errs) > 0 {
		return &ValidationError{Err: errors.Join(errs...)}
	}
	return nil
}

func validateMatchup(m models.Matchup) error {
	var errs []error
	if _, err := m.Team1.Seed.Number(); err != nil {
		errs = append(errs, fmt.Errorf("team1: %w", err))
	}
	if _, err := m.Team2.Seed.Number(); err != nil {
		errs = append(errs, fmt.Errorf("team2: %w", err))
	}
	if m.Winner.Name != m.Team1.Name && m.Winner.Name != m.Team2.Name {
		errs = append(errs, fmt.Errorf("winner %q is not a participant", m.Winner.Name))
	}
	if math.IsNaN(m.Probability) {
		errs = append(errs, errors.New("probability is NaN"))
	}
	return errors.Join(errs...)
}
