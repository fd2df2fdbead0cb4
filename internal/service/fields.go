package service

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// Requests and responses travel as google.protobuf.Struct. These helpers
// read typed fields out of a request, treating an absent field as unset.

func stringField(msg *structpb.Struct, key string) (string, bool, error) {
	v, ok := msg.GetFields()[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false, fmt.Errorf("%s must be a string", key)
	}
	return s.StringValue, true, nil
}

func numberField(msg *structpb.Struct, key string) (float64, bool, error) {
	v, ok := msg.GetFields()[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false, fmt.Errorf("%s must be a number", key)
	}
	if math.IsNaN(n.NumberValue) || math.IsInf(n.NumberValue, 0) {
		return 0, false, fmt.Errorf("%s must be finite", key)
	}
	return n.NumberValue, true, nil
}

// intField reads a whole number. Fractions are truncated toward zero, the
// way a slider position maps to a whole percent.
func intField(msg *structpb.Struct, key string) (int, bool, error) {
	f, ok, err := numberField(msg, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false, fmt.Errorf("%s out of range", key)
	}
	return int(f), true, nil
}

func boolField(msg *structpb.Struct, key string) (bool, error) {
	v, ok := msg.GetFields()[key]
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b.BoolValue, nil
}

// checkKeys rejects fields outside allowed so typos don't pass silently.
func checkKeys(msg *structpb.Struct, allowed ...string) error {
	for key := range msg.GetFields() {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown field %q", key)
		}
	}
	return nil
}
