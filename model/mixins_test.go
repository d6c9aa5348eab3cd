package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func emptyItem() *Item {
	item, _ := BasicItemResult{ID: "test-item"}.StacItem()
	return item
}

func TestGribMetadata_Apply(t *testing.T) {
	// Mock
	item := emptyItem()
	data := GribMetadata{
		Discipline: "Meteorological",
		Element:    "TMP",
		ShortName:  "0-SFC",
		Unit:       "K",
		Center:     "US-NCEP",
		Comment:    "Temperature [K]",
	}

	// Tested code
	err := data.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "Meteorological", item.Properties["grib:discipline"])
	assert.Equal(t, "TMP", item.Properties["grib:element"])
	assert.Equal(t, "0-SFC", item.Properties["grib:short_name"])
	assert.Equal(t, "K", item.Properties["grib:unit"])
	assert.Equal(t, "US-NCEP", item.Properties["grib:center"])
	assert.Equal(t, "Temperature [K]", item.Properties["description"])
}

func TestGribMetadata_Apply_SkipsEmptyValues(t *testing.T) {
	// Mock
	item := emptyItem()

	// Tested code
	err := GribMetadata{Element: "TMP"}.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "TMP", item.Properties["grib:element"])
	assert.NotContains(t, item.Properties, "grib:discipline")
	assert.NotContains(t, item.Properties, "grib:unit")
	assert.NotContains(t, item.Properties, "description")
}

func TestProjectionMetadata_Apply(t *testing.T) {
	// Mock
	item := emptyItem()
	data := ProjectionMetadata{
		EPSG:      4326,
		Bbox:      []float64{-180, -90, 180, 90},
		Shape:     []int{361, 720},
		Transform: []float64{0.5, 0, -180, 0, -0.5, 90},
	}

	// Tested code
	err := data.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.Contains(t, item.StacExtensions, ProjectionExtension)
	assert.Equal(t, 4326, item.Properties["proj:epsg"])
	assert.Equal(t, []float64{-180, -90, 180, 90}, item.Properties["proj:bbox"])
	assert.Equal(t, []int{361, 720}, item.Properties["proj:shape"])
	assert.Equal(t, []float64{0.5, 0, -180, 0, -0.5, 90}, item.Properties["proj:transform"])
}

func TestForecastMetadata_Apply(t *testing.T) {
	// Mock
	item := emptyItem()
	data := ForecastMetadata{
		ReferenceTime: time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC),
		Horizon:       "PT6H",
	}

	// Tested code
	err := data.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.Contains(t, item.StacExtensions, ForecastExtension)
	assert.Equal(t, "2022-01-21T00:00:00Z", item.Properties["forecast:reference_datetime"])
	assert.Equal(t, "PT6H", item.Properties["forecast:horizon"])
}

func TestForecastMetadata_Apply_NoHorizon(t *testing.T) {
	// Mock
	item := emptyItem()

	// Tested code
	err := ForecastMetadata{ReferenceTime: time.Unix(123, 0)}.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.NotContains(t, item.Properties, "forecast:horizon")
}

func TestRasterBands_Apply(t *testing.T) {
	// Mock
	item := emptyItem()
	item.AddAsset("grib2", &Asset{Href: "./data.grib2"})
	nodata := 9999.0
	bands := RasterBands{AssetKey: "grib2", Bands: []RasterBand{
		{DataType: "Float64", NoData: &nodata, Unit: "K"},
		{DataType: "Float64", Unit: "%"},
	}}

	// Tested code
	err := bands.Apply(item)

	// Asserts
	assert.Nil(t, err)
	assert.Contains(t, item.StacExtensions, RasterExtension)
	assert.Len(t, item.Assets["grib2"].Bands, 2)
	assert.Equal(t, "K", item.Assets["grib2"].Bands[0].Unit)
	assert.Equal(t, nodata, *item.Assets["grib2"].Bands[0].NoData)
	assert.Equal(t, "%", item.Assets["grib2"].Bands[1].Unit)
}

func TestRasterBands_Apply_MissingAsset(t *testing.T) {
	// Mock
	item := emptyItem()

	// Tested code
	err := RasterBands{AssetKey: "grib2"}.Apply(item)

	// Asserts
	assert.NotNil(t, err)
}

func TestItemAddExtension_Deduplicates(t *testing.T) {
	// Mock
	item := emptyItem()

	// Tested code
	item.AddExtension(RasterExtension)
	item.AddExtension(RasterExtension)

	// Asserts
	assert.Equal(t, []string{RasterExtension}, item.StacExtensions)
}
