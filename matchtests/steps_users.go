package matchtests

import (
	"fmt"

	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

// registerUser registers the nth fixture participant for the event. If checkEmbedding is false,
// only the presence of the embedding is required.
func (s *suite) registerUser(n int, slot framework.Slot, checkEmbedding bool) func(*framework.Context) framework.Verdict {
	return func(c *framework.Context) framework.Verdict {
		if n >= len(s.fixtures.Participants) {
			return framework.Failf("fixtures define no participant %d", n+1)
		}
		params := s.fixtures.Participant(n, c.Slot(SlotEventID))
		outcome := s.api.Send("POST", "/users/register", params, c.DebugLogger())
		var resp servicedef.RegisterUserResponse
		if err := requireResponse(outcome, &resp); err != nil {
			return framework.Fail(err).WithPayload(outcome.Body)
		}
		user := outcome.Body.GetByKey("user")
		if !truthy(resp.User.Embedding) {
			return framework.Fail(contractErrorf("no embedding generated for user %s", resp.User.ID)).WithPayload(user)
		}
		message := fmt.Sprintf("User %d registered successfully with ID: %s", n+1, resp.User.ID)
		if checkEmbedding {
			vector, err := ParseEmbedding(resp.User.Embedding)
			if err != nil {
				return framework.Fail(err).WithPayload(user)
			}
			c.Debug("embedding has %d dimensions", len(vector))
			message += ", embedding generated"
		}
		return framework.Pass(message, user).Capture(slot, resp.User.ID.String())
	}
}
