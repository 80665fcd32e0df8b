package config

import (
	"fmt"
	"strconv"
)

// SortType describes varieties of in-group ordering.
type SortType int

const (
	SortTypeInvalid SortType = iota

	// SortTypeAlphabetical compares normalized names as strings.
	SortTypeAlphabetical

	// SortTypeNatural compares digit runs numerically.
	SortTypeNatural

	// SortTypeLineLength compares element sizes.
	SortTypeLineLength

	// SortTypeCustom compares characters by their index in a user-given alphabet.
	SortTypeCustom

	// SortTypeUnsorted keeps the original order.
	SortTypeUnsorted
)

var sortTypeValueMap = map[SortType]string{
	SortTypeAlphabetical: "alphabetical",
	SortTypeNatural:      "natural",
	SortTypeLineLength:   "line-length",
	SortTypeCustom:       "custom",
	SortTypeUnsorted:     "unsorted",
}

func (s SortType) String() string {
	v, ok := sortTypeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *SortType) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range sortTypeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown sort type %q", text)
}

// MarshalText is the counterpart of UnmarshalText.
func (s SortType) MarshalText() ([]byte, error) {
	v, ok := sortTypeValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid SortType(%d)", s)
	}

	return []byte(v), nil
}

// Order is a sort direction.
type Order int

const (
	OrderInvalid Order = iota
	OrderAsc
	OrderDesc
)

var orderValueMap = map[Order]string{
	OrderAsc:  "asc",
	OrderDesc: "desc",
}

func (o Order) String() string {
	v, ok := orderValueMap[o]
	if !ok {
		return fmt.Sprintf("invalid(%d)", o)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (o *Order) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range orderValueMap {
		if v == text {
			*o = k
			return nil
		}
	}

	return fmt.Errorf("unknown sort order %q", text)
}

// MarshalText is the counterpart of UnmarshalText.
func (o Order) MarshalText() ([]byte, error) {
	v, ok := orderValueMap[o]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Order(%d)", o)
	}

	return []byte(v), nil
}

// SpecialCharacters describes how non-alphanumeric characters are treated before comparison.
type SpecialCharacters int

const (
	SpecialCharactersInvalid SpecialCharacters = iota

	// SpecialCharactersKeep compares names as is.
	SpecialCharactersKeep

	// SpecialCharactersTrim strips the leading run of non-alphanumeric characters.
	SpecialCharactersTrim

	// SpecialCharactersRemove deletes all non-alphanumeric characters.
	SpecialCharactersRemove
)

var specialCharactersValueMap = map[SpecialCharacters]string{
	SpecialCharactersKeep:   "keep",
	SpecialCharactersTrim:   "trim",
	SpecialCharactersRemove: "remove",
}

func (s SpecialCharacters) String() string {
	v, ok := specialCharactersValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *SpecialCharacters) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range specialCharactersValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown special characters mode %q", text)
}

// MarshalText is the counterpart of UnmarshalText.
func (s SpecialCharacters) MarshalText() ([]byte, error) {
	v, ok := specialCharactersValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid SpecialCharacters(%d)", s)
	}

	return []byte(v), nil
}

// NewlinesKind is a blank line policy.
type NewlinesKind int

const (
	NewlinesUnset NewlinesKind = iota
	NewlinesIgnore
	NewlinesNever
	NewlinesAlways
	NewlinesCount
)

// NewlinesBetween is a blank line requirement: ignore, never, always or an exact count.
type NewlinesBetween struct {
	Kind  NewlinesKind
	Count int
}

// Newlines shortcuts.
var (
	NewlinesBetweenIgnore = NewlinesBetween{Kind: NewlinesIgnore}
	NewlinesBetweenNever  = NewlinesBetween{Kind: NewlinesNever}
	NewlinesBetweenAlways = NewlinesBetween{Kind: NewlinesAlways}
)

// NewlinesExactly requires exactly n blank lines.
func NewlinesExactly(n int) NewlinesBetween {
	return NewlinesBetween{Kind: NewlinesCount, Count: n}
}

// IsSet checks if the policy was given at all.
func (n NewlinesBetween) IsSet() bool {
	return n.Kind != NewlinesUnset
}

// Enforced checks if the policy demands anything.
func (n NewlinesBetween) Enforced() bool {
	return n.Kind != NewlinesUnset && n.Kind != NewlinesIgnore
}

// Lines returns the required number of blank lines. Meaningful only for enforced policies.
func (n NewlinesBetween) Lines() int {
	switch n.Kind {
	case NewlinesAlways:
		return 1
	case NewlinesCount:
		return n.Count
	default:
		return 0
	}
}

func (n NewlinesBetween) String() string {
	switch n.Kind {
	case NewlinesUnset:
		return "unset"
	case NewlinesIgnore:
		return "ignore"
	case NewlinesNever:
		return "never"
	case NewlinesAlways:
		return "always"
	case NewlinesCount:
		return strconv.Itoa(n.Count)
	default:
		return fmt.Sprintf("invalid(%d)", n.Kind)
	}
}

// UnmarshalText for setting values with configs, CLI, etc.
func (n *NewlinesBetween) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	switch text {
	case "ignore":
		*n = NewlinesBetweenIgnore
	case "never":
		*n = NewlinesBetweenNever
	case "always":
		*n = NewlinesBetweenAlways
	default:
		v, err := strconv.Atoi(text)
		if err != nil || v < 0 {
			return fmt.Errorf("unknown newlines policy %q", text)
		}

		*n = NewlinesExactly(v)
	}

	return nil
}

// UnmarshalTOML accepts policy names as strings and counts as integers.
func (n *NewlinesBetween) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		return n.UnmarshalText([]byte(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("negative newlines count %d", v)
		}

		*n = NewlinesExactly(int(v))
		return nil
	default:
		return fmt.Errorf("unexpected newlines policy of type %T", data)
	}
}

// MarshalText is the counterpart of UnmarshalText.
func (n NewlinesBetween) MarshalText() ([]byte, error) {
	if n.Kind == NewlinesUnset || n.Kind > NewlinesCount {
		return nil, fmt.Errorf("cannot marshal invalid NewlinesBetween(%d)", n.Kind)
	}

	return []byte(n.String()), nil
}
