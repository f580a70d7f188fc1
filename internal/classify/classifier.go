package classify

import (
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
)

// Rule maps a tag predicate to a spot type. Rules are evaluated in
// declaration order and the first match wins, so priority lives in the
// table, not in control flow.
type Rule struct {
	Name  string
	Match func(tags map[string]string) bool
	Type  domain.SpotType
}

// Classifier maps raw geodata tags onto the fixed spot type enumeration.
type Classifier struct {
	rules    []Rule
	fallback domain.SpotType
}

func hasValue(tags map[string]string, key, value string) bool {
	return tags[key] == value
}

func hasKey(tags map[string]string, key string) bool {
	_, ok := tags[key]
	return ok
}

func wheelchairFriendly(tags map[string]string) bool {
	return tags["wheelchair"] == "yes" || tags["wheelchair"] == "designated"
}

// New builds the default rule table. Priority order:
// elevator > ramp > entrance > parking > toilet > tactile paving,
// falling back to an accessible entrance when nothing matches.
func New() *Classifier {
	return &Classifier{
		rules: []Rule{
			{
				Name: "elevator",
				Match: func(tags map[string]string) bool {
					return hasValue(tags, "highway", "elevator") || hasValue(tags, "elevator", "yes")
				},
				Type: domain.TypeElevator,
			},
			{
				Name: "ramp",
				Match: func(tags map[string]string) bool {
					return hasValue(tags, "ramp", "yes") || hasValue(tags, "ramp:wheelchair", "yes")
				},
				Type: domain.TypeRamp,
			},
			{
				Name: "wheelchair entrance",
				Match: func(tags map[string]string) bool {
					return hasKey(tags, "entrance") && wheelchairFriendly(tags)
				},
				Type: domain.TypeAccessibleEntrance,
			},
			{
				Name: "wheelchair parking",
				Match: func(tags map[string]string) bool {
					return hasValue(tags, "amenity", "parking") && wheelchairFriendly(tags)
				},
				Type: domain.TypeAccessibleParking,
			},
			{
				Name: "wheelchair toilet",
				Match: func(tags map[string]string) bool {
					return hasValue(tags, "amenity", "toilets") && wheelchairFriendly(tags)
				},
				Type: domain.TypeAccessibleToilet,
			},
			{
				Name: "tactile paving",
				Match: func(tags map[string]string) bool {
					return hasValue(tags, "tactile_paving", "yes")
				},
				Type: domain.TypeStepFreeRoute,
			},
		},
		fallback: domain.TypeAccessibleEntrance,
	}
}

// Append registers an extra rule after the built-in table. The fallback
// still applies when nothing matches.
func (c *Classifier) Append(r Rule) {
	c.rules = append(c.rules, r)
}

// Classify returns the spot type for a raw tag set.
func (c *Classifier) Classify(tags map[string]string) domain.SpotType {
	for _, r := range c.rules {
		if r.Match(tags) {
			return r.Type
		}
	}
	return c.fallback
}

// Title derives a human label for an imported element: the name tag when
// present, otherwise a generic label for the classified type.
func Title(tags map[string]string, t domain.SpotType) string {
	if name := tags["name"]; name != "" {
		return name
	}

	switch t {
	case domain.TypeRamp:
		return "Ramp"
	case domain.TypeElevator:
		return "Elevator"
	case domain.TypeStepFreeRoute:
		return "Step-free route"
	case domain.TypeAccessibleParking:
		return "Accessible parking"
	case domain.TypeAccessibleToilet:
		return "Accessible toilet"
	default:
		return "Accessible entrance"
	}
}
