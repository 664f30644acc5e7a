package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

//go:embed default.yaml
var defaultYAML []byte

// Fixtures are the request payloads sent during a run. Only the first two participants take
// part in the scenario.
type Fixtures struct {
	Event        servicedef.CreateEventParams    `yaml:"event"`
	Participants []servicedef.RegisterUserParams `yaml:"participants" validate:"min=2,dive"`
	RoundNumber  int                             `yaml:"round_number" validate:"gt=0"`
}

// Default returns the built-in fixtures.
func Default() Fixtures {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(err) // the embedded file is part of the build
	}
	return f
}

// Load reads fixtures from a YAML file.
func Load(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("invalid fixtures YAML: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return Fixtures{}, fmt.Errorf("invalid fixtures: %w", err)
	}
	return f, nil
}

// Participant returns a copy of the nth participant's registration, bound to an event.
func (f Fixtures) Participant(n int, eventID string) servicedef.RegisterUserParams {
	p := f.Participants[n]
	p.EventID = eventID
	return p
}
