package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/classify"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := classify.New()

	tests := []struct {
		name string
		tags map[string]string
		want domain.SpotType
	}{
		{
			name: "elevator by highway tag",
			tags: map[string]string{"highway": "elevator"},
			want: domain.TypeElevator,
		},
		{
			name: "elevator by elevator tag",
			tags: map[string]string{"elevator": "yes"},
			want: domain.TypeElevator,
		},
		{
			name: "ramp",
			tags: map[string]string{"ramp": "yes"},
			want: domain.TypeRamp,
		},
		{
			name: "wheelchair entrance",
			tags: map[string]string{"entrance": "main", "wheelchair": "yes"},
			want: domain.TypeAccessibleEntrance,
		},
		{
			name: "wheelchair parking",
			tags: map[string]string{"amenity": "parking", "wheelchair": "designated"},
			want: domain.TypeAccessibleParking,
		},
		{
			name: "wheelchair toilet",
			tags: map[string]string{"amenity": "toilets", "wheelchair": "yes"},
			want: domain.TypeAccessibleToilet,
		},
		{
			name: "tactile paving",
			tags: map[string]string{"tactile_paving": "yes"},
			want: domain.TypeStepFreeRoute,
		},
		{
			name: "default for unmatched tags",
			tags: map[string]string{"amenity": "cafe", "wheelchair": "yes"},
			want: domain.TypeAccessibleEntrance,
		},
		{
			name: "empty tags",
			tags: map[string]string{},
			want: domain.TypeAccessibleEntrance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.tags))
		})
	}
}

func TestClassifier_PriorityOrder(t *testing.T) {
	c := classify.New()

	// An element carrying both elevator and ramp tags must classify as
	// elevator: earlier rules win.
	tags := map[string]string{
		"highway": "elevator",
		"ramp":    "yes",
	}
	assert.Equal(t, domain.TypeElevator, c.Classify(tags))

	// Ramp beats entrance.
	tags = map[string]string{
		"ramp":       "yes",
		"entrance":   "main",
		"wheelchair": "yes",
	}
	assert.Equal(t, domain.TypeRamp, c.Classify(tags))
}

func TestClassifier_Append(t *testing.T) {
	c := classify.New()
	c.Append(classify.Rule{
		Name: "handrail",
		Match: func(tags map[string]string) bool {
			return tags["handrail"] == "yes"
		},
		Type: domain.TypeStepFreeRoute,
	})

	assert.Equal(t, domain.TypeStepFreeRoute, c.Classify(map[string]string{"handrail": "yes"}))

	// Built-in rules still take priority over appended ones.
	assert.Equal(t, domain.TypeElevator, c.Classify(map[string]string{
		"handrail": "yes",
		"elevator": "yes",
	}))
}

func TestTitle(t *testing.T) {
	t.Run("uses name tag when present", func(t *testing.T) {
		got := classify.Title(map[string]string{"name": "Syntagma metro lift"}, domain.TypeElevator)
		assert.Equal(t, "Syntagma metro lift", got)
	})

	t.Run("falls back to type label", func(t *testing.T) {
		assert.Equal(t, "Elevator", classify.Title(nil, domain.TypeElevator))
		assert.Equal(t, "Accessible entrance", classify.Title(nil, domain.TypeAccessibleEntrance))
		assert.Equal(t, "Step-free route", classify.Title(nil, domain.TypeStepFreeRoute))
	})
}
