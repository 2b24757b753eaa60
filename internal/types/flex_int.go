package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt is an integer that can be unmarshaled from either a JSON number or
// a JSON string. Dashboard clients are loose about which they send for IDs.
type FlexInt int64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexInt: invalid integer string %q: %w", s, err)
		}
		*f = FlexInt(val)
		return nil
	}

	return fmt.Errorf("FlexInt: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Uint64 converts FlexInt to uint64, clamping negatives to zero.
func (f FlexInt) Uint64() uint64 {
	if f < 0 {
		return 0
	}
	return uint64(f)
}

// Int converts FlexInt back to int.
func (f FlexInt) Int() int {
	return int(f)
}
