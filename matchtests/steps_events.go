package matchtests

import (
	"fmt"
	"net/url"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

func (s *suite) createEvent(c *framework.Context) framework.Verdict {
	outcome := s.api.Send("POST", "/events", s.fixtures.Event, c.DebugLogger())
	var resp servicedef.CreateEventResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	id := resp.Event.ID.String()
	return framework.Pass(fmt.Sprintf("Event created successfully with ID: %s", id), outcome.Body.GetByKey("event")).
		Capture(SlotEventID, id)
}

// listEvents only fails if the listing is unusable. Not finding the event created by this run
// is reported in the message, since the service may page or filter the list.
func (s *suite) listEvents(c *framework.Context) framework.Verdict {
	outcome := s.api.Send("GET", "/events", nil, c.DebugLogger())
	var resp servicedef.ListEventsResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	message := fmt.Sprintf("Found %d events", len(resp.Events))
	if eventID, ok := c.Lookup(SlotEventID); ok {
		if containsEvent(resp.Events, eventID) {
			message += ", including our created event"
		} else {
			message += ", but our created event not found"
		}
	}
	return framework.Pass(message, outcome.Body.GetByKey("events"))
}

func containsEvent(events []ldvalue.Value, id string) bool {
	for _, e := range events {
		if idString(e.GetByKey("id")) == id {
			return true
		}
	}
	return false
}

// idString renders a string or numeric id the way servicedef.ID does.
func idString(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.StringType:
		return v.StringValue()
	case ldvalue.NumberType:
		return v.JSONString()
	default:
		return ""
	}
}

func (s *suite) getEventDetails(c *framework.Context) framework.Verdict {
	eventID := c.Slot(SlotEventID)
	outcome := s.api.Send("GET", "/events/"+url.PathEscape(eventID), nil, c.DebugLogger())
	var resp servicedef.EventDetailsResponse
	if err := requireResponse(outcome, &resp); err != nil {
		return framework.Fail(err).WithPayload(outcome.Body)
	}
	return framework.Pass(fmt.Sprintf("Event details retrieved with %d participants", len(resp.Participants)), outcome.Body)
}
