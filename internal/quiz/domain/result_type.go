package domain

import (
	"fmt"
	"strings"
)

// ResultType is the attachment style a respondent is classified into.
type ResultType uint8

const (
	Secure ResultType = iota + 1
	Anxious
	Avoidant
	Fearful
)

// AllResultTypes lists every label in dashboard order.
var AllResultTypes = []ResultType{Secure, Anxious, Avoidant, Fearful}

// String returns the wire label stored in the resultType field.
func (t ResultType) String() string {
	switch t {
	case Secure:
		return "secure"
	case Anxious:
		return "anxious"
	case Avoidant:
		return "avoidant"
	case Fearful:
		return "fearful"
	default:
		return ""
	}
}

// DisplayName は結果画面に出すラベル。
func (t ResultType) DisplayName() string {
	switch t {
	case Secure:
		return "안정형 (안전기지 🏕️)"
	case Anxious:
		return "불안형 (애정 갈구 💌)"
	case Avoidant:
		return "회피형 (거리두기 🧊)"
	case Fearful:
		return "혼란형 (복잡미묘 🎭)"
	default:
		return ""
	}
}

// Valid reports whether t is one of the four labels.
func (t ResultType) Valid() bool {
	return t >= Secure && t <= Fearful
}

// ParseResultType maps a stored label back onto the enumeration.
func ParseResultType(raw string) (ResultType, bool) {
	switch strings.TrimSpace(raw) {
	case "secure":
		return Secure, true
	case "anxious":
		return Anxious, true
	case "avoidant":
		return Avoidant, true
	case "fearful":
		return Fearful, true
	default:
		return 0, false
	}
}

func (t ResultType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid result type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *ResultType) UnmarshalText(text []byte) error {
	parsed, ok := ParseResultType(string(text))
	if !ok {
		return fmt.Errorf("unknown result type %q", string(text))
	}
	*t = parsed
	return nil
}
