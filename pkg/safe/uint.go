// Package safe provides numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint32Slice converts every element, failing on the first one out of range.
func Uint32Slice[T integer](values []T) ([]uint32, error) {
	out := make([]uint32, 0, len(values))
	for i, v := range values {
		u, err := Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, u)
	}
	return out, nil
}
