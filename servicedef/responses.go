package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// SuccessFlagged is implemented by responses that carry a top-level "success" flag.
type SuccessFlagged interface {
	Succeeded() bool
}

type Event struct {
	ID               ID     `json:"id" validate:"required"`
	Name             string `json:"name"`
	Theme            string `json:"theme"`
	Status           string `json:"status"`
	RoundDurationSec int    `json:"round_duration_sec"`
}

type CreateEventResponse struct {
	Success bool   `json:"success"`
	Event   *Event `json:"event" validate:"required"`
}

func (r CreateEventResponse) Succeeded() bool { return r.Success }

// ListEventsResponse has no contract on individual events; the listing is only searched for
// the event created in the same run.
type ListEventsResponse struct {
	Events []ldvalue.Value `json:"events" validate:"-"`
}

// User is a registered participant. Embedding is either a numeric array or a string holding a
// JSON-encoded numeric array, depending on the backend.
type User struct {
	ID            ID            `json:"id" validate:"required"`
	Email         string        `json:"email"`
	FullName      string        `json:"full_name"`
	Company       string        `json:"company"`
	Position      string        `json:"position"`
	CurrentIntent string        `json:"current_intent"`
	Embedding     ldvalue.Value `json:"embedding" validate:"-"`
}

type RegisterUserResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user" validate:"required"`
}

func (r RegisterUserResponse) Succeeded() bool { return r.Success }

// EventDetailsResponse describes GET /events/{id}. Participants are not checked individually.
type EventDetailsResponse struct {
	Event        *Event          `json:"event" validate:"required"`
	Participants []ldvalue.Value `json:"participants" validate:"min=2"`
}

// Match is a pairing produced by a matching round. The handshake flags are kept as raw values
// because the contract only requires them to be truthy.
type Match struct {
	ID                 ID                    `json:"id" validate:"required"`
	EventID            ID                    `json:"event_id"`
	UserAID            ID                    `json:"user_a_id"`
	UserBID            ID                    `json:"user_b_id"`
	RoundNumber        ldvalue.OptionalInt   `json:"round_number" validate:"-"`
	TableNumber        ldvalue.OptionalInt   `json:"table_number" validate:"-"`
	IcebreakerQuestion ldvalue.OptionalString `json:"icebreaker_question" validate:"-"`
	HandshakeA         ldvalue.Value         `json:"handshake_a" validate:"-"`
	HandshakeB         ldvalue.Value         `json:"handshake_b" validate:"-"`
	Status             string                `json:"status"`
}

type StartMatchingResponse struct {
	Success bool    `json:"success"`
	Matches []Match `json:"matches" validate:"min=1,dive"`
}

func (r StartMatchingResponse) Succeeded() bool { return r.Success }

type Partner struct {
	ID       ID     `json:"id" validate:"required"`
	FullName string `json:"full_name"`
	Company  string `json:"company"`
}

type UserMatch struct {
	ID      ID       `json:"id"`
	Partner *Partner `json:"partner" validate:"required"`
}

type UserMatchesResponse struct {
	Matches []UserMatch `json:"matches" validate:"min=1,dive"`
}

type HandshakeResponse struct {
	Success   bool          `json:"success"`
	Match     *Match        `json:"match" validate:"required"`
	BothReady ldvalue.Value `json:"bothReady" validate:"-"`
}

func (r HandshakeResponse) Succeeded() bool { return r.Success }

type GetMatchResponse struct {
	Match *Match `json:"match" validate:"required"`
}
