package ticket

import (
	"errors"
	"strings"
)

var ErrInvalidVariant = errors.New("invalid ticket variant")

type Variant string

const (
	SingleRace       Variant = "SINGLE_RACE"
	WeekendPackage   Variant = "WEEKEND_PACKAGE"
	SeasonMembership Variant = "SEASON_MEMBERSHIP"
)

func (v Variant) String() string {
	return string(v)
}

func (v Variant) IsValid() bool {
	switch v {
	case SingleRace, WeekendPackage, SeasonMembership:
		return true
	default:
		return false
	}
}

// Label is the name shown to customers at the booking counter.
func (v Variant) Label() string {
	switch v {
	case SingleRace:
		return "Single-Race Passes"
	case WeekendPackage:
		return "Weekend Packages"
	case SeasonMembership:
		return "Season Ticket"
	default:
		return ""
	}
}

// ParseVariant accepts either the tag or the counter label, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	for _, v := range []Variant{SingleRace, WeekendPackage, SeasonMembership} {
		if strings.EqualFold(s, v.String()) || strings.EqualFold(s, v.Label()) {
			return v, nil
		}
	}
	return "", ErrInvalidVariant
}
