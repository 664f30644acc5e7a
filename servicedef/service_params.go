package servicedef

// CreateEventParams is the body of POST /events.
type CreateEventParams struct {
	Name             string `json:"name" yaml:"name" validate:"required"`
	Theme            string `json:"theme,omitempty" yaml:"theme"`
	RoundDurationSec int    `json:"round_duration_sec" yaml:"round_duration_sec" validate:"gt=0"`
}

// RegisterUserParams is the body of POST /users/register. EventID is filled in from the event
// created earlier in the run, so it is never read from fixtures.
type RegisterUserParams struct {
	Email         string `json:"email" yaml:"email" validate:"required,email"`
	FullName      string `json:"full_name" yaml:"full_name" validate:"required"`
	Company       string `json:"company,omitempty" yaml:"company"`
	Position      string `json:"position,omitempty" yaml:"position"`
	CurrentIntent string `json:"current_intent" yaml:"current_intent" validate:"required"`
	EventID       string `json:"event_id" yaml:"-"`
}

// StartMatchingParams is the body of POST /events/{id}/match.
type StartMatchingParams struct {
	RoundNumber int `json:"round_number" yaml:"round_number" validate:"gt=0"`
}

// HandshakeParams is the body of POST /matches/{id}/handshake.
type HandshakeParams struct {
	UserID string `json:"user_id"`
}
