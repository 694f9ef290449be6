package tables_test

import (
	"testing"

	"github.com/scorix/grib2/tables"
	"github.com/stretchr/testify/assert"
)

func TestSimpleTableLookup(t *testing.T) {
	e := tables.DataRepTemplateTable.Lookup(3)
	if assert.NotNil(t, e) {
		assert.Equal(t, "ComplexSpatialDiff", e.Name)
	}
}

func TestSimpleTableUnknownFallsBackWithoutError(t *testing.T) {
	assert.Nil(t, tables.DataRepTemplateTable.Lookup(9999))
	assert.Contains(t, tables.DataRepTemplateTable.Name(9999), "9999")
}

func TestRangeTableLocalRange(t *testing.T) {
	e := tables.DisciplineTable.Lookup(200)
	if assert.NotNil(t, e) {
		assert.Equal(t, "Local", e.Name)
	}
}

func TestRangeTableMissing(t *testing.T) {
	assert.True(t, tables.DisciplineTable.Exists(255))
}

func TestIsFloatingPoint(t *testing.T) {
	assert.True(t, tables.IsFloatingPoint(0))
	assert.False(t, tables.IsFloatingPoint(1))
}

func TestSphericalRadiusMeters(t *testing.T) {
	r, ok := tables.SphericalRadiusMeters(6)
	assert.True(t, ok)
	assert.InDelta(t, 6371229.0, r, 0.1)

	_, ok = tables.SphericalRadiusMeters(5)
	assert.False(t, ok)
}

func TestParameterTableFor(t *testing.T) {
	tbl := tables.ParameterTableFor(0, 0)
	if assert.NotNil(t, tbl) {
		assert.Equal(t, "Temperature", tbl.Name(0))
	}
	assert.Nil(t, tables.ParameterTableFor(99, 99))
}
