package reservation

import (
	"encoding/json"
	"errors"
	"time"

	"tableside/internal/pkg/errs"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

type Reservation struct {
	ID           int       `json:"id"`
	Table        int       `json:"table"`
	Datetime     time.Time `json:"datetime"`
	Description  string    `json:"description"`
	Status       Status    `json:"status"`
	UserUsername string    `json:"user_username"`
}

// Instant marshals as an ISO-8601 UTC timestamp with millisecond precision,
// the format browsers submit from a local picker.
type Instant time.Time

const instantLayout = "2006-01-02T15:04:05.000Z"

func (i Instant) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(i).UTC().Format(instantLayout) + `"`), nil
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*i = Instant(t)
	return nil
}

func (i Instant) Time() time.Time {
	return time.Time(i)
}

// layout accepted from the local date-time picker, no zone designator.
const localLayout = "2006-01-02T15:04"

// ParseLocal converts picker input taken in loc to the absolute UTC instant
// submitted to the backend. An empty value is a client-side validation error
// and never reaches the network.
func ParseLocal(whenLocal string, loc *time.Location) (time.Time, error) {
	if whenLocal == "" {
		return time.Time{}, errs.ErrMissingDatetime
	}
	t, err := time.ParseInLocation(localLayout, whenLocal, loc)
	if err != nil {
		// tolerate seconds in the picker value
		t, err = time.ParseInLocation(localLayout+":05", whenLocal, loc)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}
