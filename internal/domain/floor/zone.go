package floor

import "errors"

var ErrInvalidZoneType = errors.New("invalid zone type")

type ZoneType string

const (
	ZoneGlass   ZoneType = "glass"
	ZoneTerrace ZoneType = "terrace"
	ZoneGreen   ZoneType = "green"
)

func NewZoneType(s string) (ZoneType, error) {
	switch ZoneType(s) {
	case ZoneGlass, ZoneTerrace, ZoneGreen:
		return ZoneType(s), nil
	}
	return "", ErrInvalidZoneType
}

// Zone is a decorative overlay rectangle on the floor plan. It carries no
// status and is only ever edited by managers.
type Zone struct {
	ID     int      `json:"id"`
	Type   ZoneType `json:"type"`
	Top    int      `json:"top"`
	Left   int      `json:"left"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}
