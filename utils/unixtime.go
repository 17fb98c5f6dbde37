package utils

import (
	"math"
	"time"
)

// FromUnixTime converts seconds since the unix epoch, possibly fractional, to a UTC time.
func FromUnixTime(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
}

// ToUnixTime converts t to seconds since the unix epoch.
func ToUnixTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
