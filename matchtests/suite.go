package matchtests

import (
	"github.com/teknopark/matchmaking-contract-tests/client"
	"github.com/teknopark/matchmaking-contract-tests/fixtures"
	"github.com/teknopark/matchmaking-contract-tests/framework"
)

const (
	SlotEventID framework.Slot = "event_id"
	SlotUser1ID framework.Slot = "user1_id"
	SlotUser2ID framework.Slot = "user2_id"
	SlotMatchID framework.Slot = "match_id"
)

// FallbackIcebreaker is the canned prompt the backend uses when it cannot generate one. It is an
// accepted value.
const FallbackIcebreaker = "Merhaba! Kendinizi tanıtır mısınız?"

// Requester is the part of client.APIClient that the steps use.
type Requester interface {
	Send(method, path string, body interface{}, logger framework.Logger) client.Outcome
}

type Options struct {
	// Extended adds steps that read the match back and record the partner's handshake.
	Extended bool
}

type suite struct {
	api      Requester
	fixtures fixtures.Fixtures
}

// NewScenario returns the steps in the order they must run.
func NewScenario(api Requester, f fixtures.Fixtures, opts Options) framework.Scenario {
	s := &suite{api: api, fixtures: f}
	scenario := framework.Scenario{
		{
			Name:   "Create Event",
			Writes: []framework.Slot{SlotEventID},
			Action: s.createEvent,
		},
		{
			Name:   "List Events",
			Peeks:  []framework.Slot{SlotEventID},
			Action: s.listEvents,
		},
		{
			Name:   "Register User 1",
			Reads:  []framework.Slot{SlotEventID},
			Writes: []framework.Slot{SlotUser1ID},
			Action: s.registerUser(0, SlotUser1ID, true),
		},
		{
			Name:   "Register User 2",
			Reads:  []framework.Slot{SlotEventID},
			Writes: []framework.Slot{SlotUser2ID},
			Action: s.registerUser(1, SlotUser2ID, false),
		},
		{
			Name:   "Get Event Details",
			Reads:  []framework.Slot{SlotEventID},
			Action: s.getEventDetails,
		},
		{
			Name:   "Start AI Matching",
			Reads:  []framework.Slot{SlotEventID},
			Writes: []framework.Slot{SlotMatchID},
			Action: s.startMatching,
		},
		{
			Name:   "Get User Matches",
			Reads:  []framework.Slot{SlotUser1ID},
			Action: s.getUserMatches,
		},
		{
			Name:   "Record QR Handshake",
			Reads:  []framework.Slot{SlotMatchID, SlotUser1ID},
			Action: s.recordHandshake,
		},
	}
	if opts.Extended {
		scenario = append(scenario,
			framework.Step{
				Name:   "Get Match",
				Reads:  []framework.Slot{SlotMatchID},
				Action: s.getMatch,
			},
			framework.Step{
				Name:   "Record Partner Handshake",
				Reads:  []framework.Slot{SlotMatchID, SlotUser2ID},
				Action: s.recordPartnerHandshake,
			},
		)
	}
	return scenario
}

// RunTestSuite runs the whole scenario against the API.
func RunTestSuite(api Requester, f fixtures.Fixtures, opts Options, runOpts framework.RunOptions) (framework.Results, error) {
	return framework.Run(NewScenario(api, f, opts), runOpts)
}
