package common

import "github.com/google/uuid"

// UUID is a canonical-form uuid string. Keeping it a string keeps scanning and
// JSON encoding trivial while ParseUUID guards the format at the edges.
type UUID string

func NewUUID() UUID {
	return UUID(uuid.NewString())
}

func ParseUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", err
	}
	return UUID(parsed.String()), nil
}

func (u UUID) String() string {
	return string(u)
}

func (u UUID) IsZero() bool {
	return u == ""
}
