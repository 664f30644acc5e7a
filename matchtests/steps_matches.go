package matchtests

import (
	"fmt"
	"net/url"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/teknopark/matchmaking-contract-tests/client"
	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

func (s *suite) startMatching(c *framework.Context) framework.Verdict {
	eventID := c.Slot(SlotEventID)
	params := servicedef.StartMatchingParams{RoundNumber: s.fixtures.RoundNumber}
	outcome := s.api.Send("POST", "/events/"+url.PathEscape(eventID)+"/match", params, c.DebugLogger())
	var resp servicedef.StartMatchingResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	fallbacks := 0
	for _, m := range resp.Matches {
		if q, ok := m.IcebreakerQuestion.Get(); !ok || q == "" || q == FallbackIcebreaker {
			fallbacks++
		}
	}
	message := fmt.Sprintf("AI matching completed with %d matches, icebreaker questions generated", len(resp.Matches))
	if fallbacks > 0 {
		message += fmt.Sprintf(" (%d using the fallback prompt)", fallbacks)
	}
	return framework.Pass(message, outcome.Body.GetByKey("matches")).
		Capture(SlotMatchID, resp.Matches[0].ID.String())
}

func (s *suite) getUserMatches(c *framework.Context) framework.Verdict {
	userID := c.Slot(SlotUser1ID)
	outcome := s.api.Send("GET", "/matches/user/"+url.PathEscape(userID), nil, c.DebugLogger())
	var resp servicedef.UserMatchesResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	return framework.Pass(fmt.Sprintf("User matches retrieved successfully with %d matches", len(resp.Matches)),
		outcome.Body.GetByKey("matches"))
}

func (s *suite) recordHandshake(c *framework.Context) framework.Verdict {
	resp, outcome, err := s.handshake(c, c.Slot(SlotUser1ID))
	if err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	if !truthy(resp.Match.HandshakeA) && !truthy(resp.Match.HandshakeB) {
		return framework.Fail(contractErrorf("no handshake recorded in match %s", resp.Match.ID)).WithPayload(outcome.Body)
	}
	if resp.BothReady.BoolValue() {
		return framework.Fail(contractErrorf("bothReady should be false when only one participant has shaken hands")).
			WithPayload(outcome.Body)
	}
	return framework.Pass("Handshake recorded successfully, waiting for partner", outcome.Body)
}

func (s *suite) recordPartnerHandshake(c *framework.Context) framework.Verdict {
	resp, outcome, err := s.handshake(c, c.Slot(SlotUser2ID))
	if err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	if !truthy(resp.Match.HandshakeA) || !truthy(resp.Match.HandshakeB) {
		return framework.Fail(contractErrorf("both handshakes should be recorded in match %s", resp.Match.ID)).
			WithPayload(outcome.Body)
	}
	if !resp.BothReady.BoolValue() {
		return framework.Fail(contractErrorf("bothReady should be true once both participants have shaken hands")).
			WithPayload(outcome.Body)
	}
	return framework.Pass("Handshake recorded successfully, both users ready", outcome.Body)
}

// handshake posts a handshake for the captured match and checks the parts of the response that
// do not depend on which participant sent it.
func (s *suite) handshake(c *framework.Context, userID string) (servicedef.HandshakeResponse, client.Outcome, error) {
	matchID := c.Slot(SlotMatchID)
	params := servicedef.HandshakeParams{UserID: userID}
	outcome := s.api.Send("POST", "/matches/"+url.PathEscape(matchID)+"/handshake", params, c.DebugLogger())
	var resp servicedef.HandshakeResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return resp, outcome, err
	}
	if resp.BothReady.Type() != ldvalue.BoolType {
		return resp, outcome, contractErrorf("bothReady should be a boolean, got %s", resp.BothReady.JSONString())
	}
	return resp, outcome, nil
}

func (s *suite) getMatch(c *framework.Context) framework.Verdict {
	matchID := c.Slot(SlotMatchID)
	outcome := s.api.Send("GET", "/matches/"+url.PathEscape(matchID), nil, c.DebugLogger())
	var resp servicedef.GetMatchResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	if resp.Match.ID.String() != matchID {
		return framework.Fail(contractErrorf("expected match %s, got %s", matchID, resp.Match.ID)).WithPayload(outcome.Body)
	}
	message := fmt.Sprintf("Match %s retrieved", matchID)
	if resp.Match.Status != "" {
		message += ", status " + resp.Match.Status
	}
	return framework.Pass(message, outcome.Body.GetByKey("match"))
}
