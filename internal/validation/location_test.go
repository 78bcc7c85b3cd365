package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
	"github.com/diegoclair/shift-roster/internal/selector"
)

func TestNewLocation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := NewLocation("", entity.NewLocationInput{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas: []entity.NewAreaInput{
				{Name: "Bar", Sections: []string{"Front Bar"}},
				{Name: "Kitchen"},
			},
		})
		assert.True(t, res.Valid(), res.Violations)
	})

	t.Run("blank fields", func(t *testing.T) {
		res := NewLocation("", entity.NewLocationInput{
			Name:    "  ",
			Address: "",
			Areas:   []entity.NewAreaInput{{Name: "Bar", Sections: []string{" "}}},
		})
		fields := fieldsOf(res)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "address")
		assert.Contains(t, fields, "areas[0].sections[0]")
		assert.True(t, res.Has(CodeRequired))
	})

	t.Run("duplicate areas", func(t *testing.T) {
		res := NewLocation("", entity.NewLocationInput{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas:   []entity.NewAreaInput{{Name: "Bar"}, {Name: "bar "}},
		})
		require.Len(t, res.Violations, 1)
		assert.Equal(t, CodeDuplicateArea, res.Violations[0].Code)
	})
}

func TestOnboarding(t *testing.T) {
	assert.True(t, Onboarding(nil).Has(CodeRequired))

	res := Onboarding([]entity.NewLocationInput{{Name: "Golden Lion", Address: "1 High St"}})
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "locations[0].areas", res.Violations[0].Field)

	res = Onboarding([]entity.NewLocationInput{{
		Name:    "Golden Lion",
		Address: "1 High St",
		Areas:   []entity.NewAreaInput{{Name: "Bar"}, {Name: "BAR"}},
	}})
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "locations[0].areas[1].name", res.Violations[0].Field)
}

func TestLocationEdit(t *testing.T) {
	current := entity.Location{
		ID:      "l1",
		Name:    "Golden Lion",
		Address: "1 High St",
		Areas: []entity.Area{
			{ID: "A1", Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
			{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
		},
	}
	usage := usageFixture()

	t.Run("removing unused area is allowed", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A1", Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
			},
		}, usage)
		assert.True(t, res.Valid(), res.Violations)
	})

	t.Run("removing used area is rejected", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
			},
		}, usage)
		assert.True(t, res.Has(CodeAreaInUse))
	})

	t.Run("renaming used section is rejected", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A1", Name: "Bar", Sections: []string{"Main Bar", "Beer Garden"}},
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
			},
		}, usage)
		assert.True(t, res.Has(CodeSectionInUse))
	})

	t.Run("renaming unused section and adding area is allowed", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "The Golden Lion",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A1", Name: "Bar", Sections: []string{"Front Bar", "Garden"}},
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
				{Name: "Cellar"},
			},
		}, usage)
		assert.True(t, res.Valid(), res.Violations)
	})

	t.Run("repeated area id is rejected", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "Golden Lion",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A1", Name: "Cellar"},
				{ID: "A1", Name: "Bar", Sections: []string{"Front Bar", "Beer Garden"}},
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
			},
		}, usage)
		assert.True(t, res.Has(CodeDuplicateID))
		assert.Contains(t, fieldsOf(res), "areas[1].id")
	})

	t.Run("every failure is reported", func(t *testing.T) {
		res := LocationEdit(current, entity.LocationEdit{
			Name:    "",
			Address: "1 High St",
			Areas: []entity.AreaEdit{
				{ID: "A2", Name: "Kitchen", Sections: []string{"Pass"}},
				{ID: "nope", Name: "kitchen"},
			},
		}, usage)
		assert.True(t, res.Has(CodeRequired))
		assert.True(t, res.Has(CodeDuplicateArea))
		assert.True(t, res.Has(CodeUnknownReference))
		assert.True(t, res.Has(CodeAreaInUse))
	})
}

func TestLocationRemoval(t *testing.T) {
	loc := entity.Location{ID: "l1", Name: "Golden Lion"}
	assert.True(t, LocationRemoval(loc, usageFixture()).Has(CodeLocationInUse))
	assert.True(t, LocationRemoval(loc, selector.Usage{}).Valid())
}

func fieldsOf(res Result) []string {
	fields := make([]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}
