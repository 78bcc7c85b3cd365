package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

func TestStaff(t *testing.T) {
	rate := 30.0
	negative := -1.0

	tests := []struct {
		name      string
		input     entity.NewStaffInput
		wantField string
	}{
		{
			name: "valid",
			input: entity.NewStaffInput{
				Name: "Alex", Role: "Bartender", Email: "alex@example.com", PayRate: &rate,
				Availability: []entity.AvailabilityDay{entity.Mon, entity.Sat}, Locations: []string{"l1"},
			},
		},
		{
			name:      "blank name",
			input:     entity.NewStaffInput{Name: " ", Role: "Bartender", Locations: []string{"l1"}},
			wantField: "name",
		},
		{
			name:      "bad email",
			input:     entity.NewStaffInput{Name: "Alex", Role: "Bartender", Email: "nope", Locations: []string{"l1"}},
			wantField: "email",
		},
		{
			name:      "negative rate",
			input:     entity.NewStaffInput{Name: "Alex", Role: "Bartender", PayRate: &negative, Locations: []string{"l1"}},
			wantField: "payRate",
		},
		{
			name:      "no locations",
			input:     entity.NewStaffInput{Name: "Alex", Role: "Bartender"},
			wantField: "locations",
		},
		{
			name: "unknown day",
			input: entity.NewStaffInput{
				Name: "Alex", Role: "Bartender", Locations: []string{"l1"},
				Availability: []entity.AvailabilityDay{"Funday"},
			},
			wantField: "availability[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Staff(tt.input)
			if tt.wantField == "" {
				assert.True(t, res.Valid(), res.Violations)
				return
			}
			assert.Contains(t, fieldsOf(res), tt.wantField)
		})
	}
}

func TestStaffPatch(t *testing.T) {
	blank := ""
	bad := "not-an-email"
	negative := -5.0
	empty := []string{}

	assert.True(t, StaffPatch(entity.StaffPatch{}).Valid())
	assert.True(t, StaffPatch(entity.StaffPatch{Email: &blank}).Valid())

	res := StaffPatch(entity.StaffPatch{Name: &blank, Email: &bad, PayRate: &negative, Locations: &empty})
	fields := fieldsOf(res)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "payRate")
	assert.Contains(t, fields, "locations")
}

func TestStaffLocations(t *testing.T) {
	locations := []entity.Location{{ID: "l1"}, {ID: "l2"}}
	assert.True(t, StaffLocations([]string{"l1", "l2"}, locations).Valid())

	res := StaffLocations([]string{"l1", "l9"}, locations)
	assert.Equal(t, []string{"locations[1]"}, fieldsOf(res))
}
