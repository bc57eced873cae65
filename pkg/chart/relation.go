package chart

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ganttline/pkg/errors"
)

// RelationType says which vertical edges of the source and target bars a
// dependency connector attaches to.
type RelationType int

const (
	// EndToStart is the zero value: the target starts after the source ends.
	EndToStart RelationType = iota
	StartToStart
	StartToEnd
	EndToEnd
)

var relationNames = [...]string{
	EndToStart:   "EndToStart",
	StartToStart: "StartToStart",
	StartToEnd:   "StartToEnd",
	EndToEnd:     "EndToEnd",
}

// RelationTypes lists every relation type in declaration order.
var RelationTypes = []RelationType{EndToStart, StartToStart, StartToEnd, EndToEnd}

func (r RelationType) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "RelationType(" + strconv.Itoa(int(r)) + ")"
	}
	return relationNames[r]
}

// ParseRelationType accepts the canonical names case-insensitively, their
// kebab-case spelling, and the two-letter forms (es/fs, ss, se/sf, ee/ff).
// An empty string is EndToStart.
func ParseRelationType(s string) (RelationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "endtostart", "end-to-start", "es", "fs":
		return EndToStart, nil
	case "starttostart", "start-to-start", "ss":
		return StartToStart, nil
	case "starttoend", "start-to-end", "se", "sf":
		return StartToEnd, nil
	case "endtoend", "end-to-end", "ee", "ff":
		return EndToEnd, nil
	default:
		return EndToStart, errors.New(errors.ErrCodeInvalidRelation,
			"invalid relation type %q (must be EndToStart, StartToStart, StartToEnd or EndToEnd)", s)
	}
}

// MarshalText encodes the canonical name.
func (r RelationType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes any form accepted by [ParseRelationType].
func (r *RelationType) UnmarshalText(b []byte) error {
	v, err := ParseRelationType(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
