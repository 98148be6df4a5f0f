package types

import "strings"

// FactType is the category of a memory unit. The set is defined by the server
// and may grow, so unknown values are passed through untouched.
type FactType string

const (
	FactTypeWorld   FactType = "world"
	FactTypeAgent   FactType = "agent"
	FactTypeOpinion FactType = "opinion"
)

// AllFactTypes returns the fact types known to this client
func AllFactTypes() []FactType {
	return []FactType{
		FactTypeWorld,
		FactTypeAgent,
		FactTypeOpinion,
	}
}

// IsKnown reports whether the fact type is one this client knows about
func (f FactType) IsKnown() bool {
	switch f {
	case FactTypeWorld,
		FactTypeAgent,
		FactTypeOpinion:
		return true
	default:
		return false
	}
}

// String returns the string representation of the fact type
func (f FactType) String() string {
	return string(f)
}

// ParseFactTypes splits comma separated values into fact types, dropping
// blanks. Each value is lower-cased and trimmed.
func ParseFactTypes(values ...string) []FactType {
	var result []FactType
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			result = append(result, FactType(part))
		}
	}
	return result
}
