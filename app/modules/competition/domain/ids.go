package competitiondomain

import (
	"bytes"

	"github.com/google/uuid"
)

// GradeID identifies one yearly edition of the competition.
type GradeID uuid.UUID

func (id GradeID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id GradeID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id GradeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *GradeID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// SeriesID identifies one round within a Grade.
type SeriesID uuid.UUID

func (id SeriesID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id SeriesID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id SeriesID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *SeriesID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// TaskID identifies a graded problem.
type TaskID uuid.UUID

func (id TaskID) String() string { return uuid.UUID(id).String() }

// ApplicationID identifies a competitor's enrollment in a Grade.
type ApplicationID uuid.UUID

func (id ApplicationID) String() string { return uuid.UUID(id).String() }

func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ApplicationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Compare orders application ids bytewise.
func (id ApplicationID) Compare(other ApplicationID) int {
	return bytes.Compare(id[:], other[:])
}

// ParticipantID identifies a person independent of any Grade.
type ParticipantID uuid.UUID

func (id ParticipantID) String() string { return uuid.UUID(id).String() }

// EventID identifies an optional activity between two deadlines.
type EventID uuid.UUID

func (id EventID) String() string { return uuid.UUID(id).String() }

// StickerID is the public sticker number printed on the badge.
type StickerID int

// ParseSeriesID parses the canonical textual form of a series id.
func ParseSeriesID(s string) (SeriesID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SeriesID{}, err
	}
	return SeriesID(id), nil
}

// ParseGradeID parses the canonical textual form of a grade id.
func ParseGradeID(s string) (GradeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GradeID{}, err
	}
	return GradeID(id), nil
}

// ParseApplicationID parses the canonical textual form of an application id.
func ParseApplicationID(s string) (ApplicationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ApplicationID{}, err
	}
	return ApplicationID(id), nil
}
