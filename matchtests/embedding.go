package matchtests

import (
	"encoding/json"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ParseEmbedding returns the numeric vector held by a user's embedding field. The backend may
// send the vector itself or a string containing its JSON encoding.
func ParseEmbedding(v ldvalue.Value) ([]float64, error) {
	if v.Type() == ldvalue.StringType {
		var decoded ldvalue.Value
		if err := json.Unmarshal([]byte(v.StringValue()), &decoded); err != nil {
			return nil, contractErrorf("embedding is not valid JSON: %s", truncate(v.StringValue()))
		}
		v = decoded
	}
	if v.Type() != ldvalue.ArrayType {
		return nil, contractErrorf("invalid embedding format: expected a numeric array, got %s", v.Type())
	}
	if v.Count() == 0 {
		return nil, contractErrorf("invalid embedding format: the array is empty")
	}
	ret := make([]float64, 0, v.Count())
	for i := 0; i < v.Count(); i++ {
		e := v.GetByIndex(i)
		if !e.IsNumber() {
			return nil, contractErrorf("invalid embedding format: element %d is %s, not a number", i, e.JSONString())
		}
		ret = append(ret, e.Float64Value())
	}
	return ret, nil
}

// truthy follows the usual JSON-ish notion of truth: null, false, 0, "", and empty arrays or
// objects are false.
func truthy(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.BoolType:
		return v.BoolValue()
	case ldvalue.NumberType:
		return v.Float64Value() != 0
	case ldvalue.StringType:
		return v.StringValue() != ""
	case ldvalue.ArrayType, ldvalue.ObjectType:
		return v.Count() > 0
	default:
		return false
	}
}

func truncate(s string) string {
	if len(s) > 80 {
		return fmt.Sprintf("%s... (%d chars)", s[:80], len(s))
	}
	return s
}
