package matchtests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teknopark/matchmaking-contract-tests/client"
	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/servicedef"
)

func outcomeWithBody(body string) client.Outcome {
	return client.Outcome{StatusCode: 200, Raw: []byte(body)}
}

func TestRequireResponseContractViolations(t *testing.T) {
	for _, p := range []struct {
		name     string
		body     string
		target   interface{}
		expected string
	}{
		{"success false", `{"success":false,"event":{"id":"e"}}`, &servicedef.CreateEventResponse{},
			"API returned success=false"},
		{"missing event", `{"success":true}`, &servicedef.CreateEventResponse{},
			"missing required field event"},
		{"empty event id", `{"success":true,"event":{"id":""}}`, &servicedef.CreateEventResponse{},
			"missing required field event.id"},
		{"null user id", `{"success":true,"user":{"id":null}}`, &servicedef.RegisterUserResponse{},
			"missing required field user.id"},
		{"events not array", `{"events":"none"}`, &servicedef.ListEventsResponse{},
			"events should be an array, got string"},
		{"too few participants", `{"event":{"id":"e"},"participants":[{"id":"u"}]}`, &servicedef.EventDetailsResponse{},
			"expected at least 2 participants, got 1"},
		{"participants missing", `{"event":{"id":"e"}}`, &servicedef.EventDetailsResponse{},
			"expected at least 2 participants, got 0"},
		{"no matches", `{"success":true,"matches":[]}`, &servicedef.StartMatchingResponse{},
			"matches should not be empty"},
		{"match without id", `{"success":true,"matches":[{"id":"m1"},{"icebreaker_question":"x"}]}`,
			&servicedef.StartMatchingResponse{}, "missing required field matches[1].id"},
		{"partner missing", `{"matches":[{"id":"m1"}]}`, &servicedef.UserMatchesResponse{},
			"missing required field matches[0].partner"},
		{"partner without id", `{"matches":[{"id":"m1","partner":{"full_name":"x"}}]}`, &servicedef.UserMatchesResponse{},
			"missing required field matches[0].partner.id"},
		{"handshake without match", `{"success":true,"bothReady":false}`, &servicedef.HandshakeResponse{},
			"missing required field match"},
	} {
		t.Run(p.name, func(t *testing.T) {
			err := requireResponse(outcomeWithBody(p.body), p.target)
			require.Error(t, err)
			assert.Equal(t, p.expected, err.Error())
			assert.Equal(t, framework.KindContract, framework.KindOf(err))
		})
	}
}

func TestRequireResponseAcceptsValidBodies(t *testing.T) {
	var created servicedef.CreateEventResponse
	require.NoError(t, requireResponse(outcomeWithBody(`{"success":true,"event":{"id":7}}`), &created))
	assert.Equal(t, servicedef.ID("7"), created.Event.ID)

	var listed servicedef.ListEventsResponse
	require.NoError(t, requireResponse(outcomeWithBody(`{}`), &listed))
	assert.Len(t, listed.Events, 0)

	var matches servicedef.StartMatchingResponse
	require.NoError(t, requireResponse(outcomeWithBody(`{"success":true,"matches":[{"id":"m1","icebreaker_question":null}]}`), &matches))
	assert.False(t, matches.Matches[0].IcebreakerQuestion.IsDefined())
}

func TestRequireResponseWrapsClientFailure(t *testing.T) {
	statusErr := &client.StatusError{StatusCode: 503, Body: "busy"}
	err := requireResponse(client.Outcome{StatusCode: 503, Err: statusErr}, &servicedef.CreateEventResponse{})
	require.Error(t, err)
	assert.Equal(t, "request failed: HTTP 503: busy", err.Error())
	assert.True(t, errors.Is(err, statusErr))
	assert.Equal(t, framework.KindProtocol, framework.KindOf(err))
}

func TestUnexpectedShapeIsContractError(t *testing.T) {
	err := requireResponse(outcomeWithBody(`[1,2]`), &servicedef.CreateEventResponse{})
	require.Error(t, err)
	assert.Equal(t, framework.KindContract, framework.KindOf(err))
	assert.Contains(t, err.Error(), "should be an object")
}
