package triage

import "strings"

// Category is the closed set of ticket categories. CategoryUnknown is the
// explicit fallback for classifier output that matches nothing else.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBilling
	CategoryTechnical
	CategoryAccount
	CategoryFeatureRequest
	CategoryGeneral
)

// Categories lists every routable category, excluding the Unknown
// fallback.
func Categories() []Category {
	return []Category{
		CategoryBilling,
		CategoryTechnical,
		CategoryAccount,
		CategoryFeatureRequest,
		CategoryGeneral,
	}
}

// String returns the category token used on the classifier wire.
func (c Category) String() string {
	switch c {
	case CategoryBilling:
		return "billing"
	case CategoryTechnical:
		return "technical"
	case CategoryAccount:
		return "account"
	case CategoryFeatureRequest:
		return "feature_request"
	case CategoryGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// ParseCategory maps classifier output to the enum. Matching is
// case-insensitive and tolerates surrounding whitespace; anything
// unrecognized becomes CategoryUnknown.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "billing":
		return CategoryBilling
	case "technical":
		return CategoryTechnical
	case "account":
		return CategoryAccount
	case "feature_request", "feature request":
		return CategoryFeatureRequest
	case "general":
		return CategoryGeneral
	default:
		return CategoryUnknown
	}
}
