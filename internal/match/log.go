// internal/match/log.go
//
// Log rendering for scan results: combinations print as
// "3 + 4 + 7 = 14 (valid)" and directions marshal as zerolog objects.

package match

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// String renders a combination as "3 + 4 + 7 = 14 (valid)".
func (c Combination) String() string {
	parts := make([]string, len(c.Values))
	for i, v := range c.Values {
		parts[i] = strconv.Itoa(v)
	}
	state := "invalid"
	if c.Valid {
		state = "valid"
	}
	return strings.Join(parts, " + ") + " = " + strconv.Itoa(c.Sum) + " (" + state + ")"
}

// MarshalZerologObject lets a Direction be logged with Object().
func (d Direction) MarshalZerologObject(e *zerolog.Event) {
	combos := make([]string, len(d.Combinations))
	for i, c := range d.Combinations {
		combos[i] = c.String()
	}
	e.Str("axis", string(d.Axis)).
		Int("score", d.Score).
		Strs("combinations", combos)
}
