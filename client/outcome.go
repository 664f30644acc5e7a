package client

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Outcome is the result of one call to APIClient.Send. If Err is nil, the response had a status
// below 400 and its body was valid JSON, which is available both raw and parsed.
type Outcome struct {
	Method     string
	URL        string
	RequestID  string
	StatusCode int
	Raw        []byte
	Body       ldvalue.Value
	Err        error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Decode unmarshals the raw response body into a typed value.
func (o Outcome) Decode(target interface{}) error {
	if o.Err != nil {
		return o.Err
	}
	return json.Unmarshal(o.Raw, target)
}
