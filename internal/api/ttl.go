package api

import "strconv"

// TTL is the type of TTL values, in seconds.
type TTL int

// TTLAuto is the special TTL value 1, which means the provider chooses the TTL.
const TTLAuto TTL = 1

// Int converts a TTL into an integer.
func (t TTL) Int() int {
	return int(t)
}

// String converts a TTL into a string.
func (t TTL) String() string {
	return strconv.Itoa(t.Int())
}

// Describe converts a TTL into a human-readable string.
func (t TTL) Describe() string {
	if t == TTLAuto {
		return "1 (auto)"
	}
	return strconv.Itoa(t.Int())
}
