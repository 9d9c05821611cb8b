package reviewreply

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MapRating maps an explicit rating to a sentiment label. It reports false when
// no rating was given, leaving the decision to the classifier.
//
// Ratings outside the usual 1-5 scale follow the same thresholds.
func MapRating(rating *int) (SentimentLabel, bool) {
	if rating == nil {
		return "", false
	}
	switch r := *rating; {
	case r >= 4:
		return Positive, true
	case r == 3:
		return Neutral, true
	default:
		return Negative, true
	}
}

// ParseRating coerces a loosely typed rating into an integer. Values that cannot
// be read as an integer yield nil. Numbers outside the int range saturate.
func ParseRating(v any) *int {
	var r int
	switch t := v.(type) {
	case nil:
		return nil
	case *int:
		if t == nil {
			return nil
		}
		r = *t
	case int:
		r = t
	case int8:
		r = int(t)
	case int16:
		r = int(t)
	case int32:
		r = int(t)
	case int64:
		r = clampInt64(t)
	case uint:
		r = clampUint64(uint64(t))
	case uint8:
		r = int(t)
	case uint16:
		r = int(t)
	case uint32:
		r = clampUint64(uint64(t))
	case uint64:
		r = clampUint64(t)
	case float32:
		return ParseRating(float64(t))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		switch {
		case t >= math.MaxInt:
			r = math.MaxInt
		case t <= math.MinInt:
			r = math.MinInt
		default:
			r = int(math.Trunc(t))
		}
	case bool:
		if t {
			r = 1
		}
	case string:
		// Atoi saturates out of range input and reports ErrRange.
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil
		}
		r = n
	default:
		return nil
	}
	return &r
}

func clampInt64(n int64) int {
	switch {
	case n > math.MaxInt:
		return math.MaxInt
	case n < math.MinInt:
		return math.MinInt
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
