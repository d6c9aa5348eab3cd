package model

import (
	"fmt"
	"time"
)

// GribMetadata is a mixin containing GRIB band tag values shared by every
// band of an asset; shared values are recorded once at item level
type GribMetadata struct {
	Discipline string
	Element    string
	ShortName  string
	Unit       string
	Center     string
	Comment    string
}

// Apply implements the ItemMixin interface
func (gm GribMetadata) Apply(item *Item) error {
	if gm.Discipline != "" {
		item.Properties["grib:discipline"] = gm.Discipline
	}
	if gm.Element != "" {
		item.Properties["grib:element"] = gm.Element
	}
	if gm.ShortName != "" {
		item.Properties["grib:short_name"] = gm.ShortName
	}
	if gm.Unit != "" {
		item.Properties["grib:unit"] = gm.Unit
	}
	if gm.Center != "" {
		item.Properties["grib:center"] = gm.Center
	}
	if gm.Comment != "" {
		item.Properties["description"] = gm.Comment
	}
	return nil
}

// ProjectionMetadata is a mixin containing projection extension attributes
type ProjectionMetadata struct {
	EPSG      int
	Bbox      []float64
	Shape     []int     // rows, columns
	Transform []float64 // affine order: xres, xskew, xmin, yskew, yres, ymax
}

// Apply implements the ItemMixin interface
func (pm ProjectionMetadata) Apply(item *Item) error {
	item.AddExtension(ProjectionExtension)
	item.Properties["proj:epsg"] = pm.EPSG
	if len(pm.Bbox) > 0 {
		item.Properties["proj:bbox"] = pm.Bbox
	}
	if len(pm.Shape) > 0 {
		item.Properties["proj:shape"] = pm.Shape
	}
	if len(pm.Transform) > 0 {
		item.Properties["proj:transform"] = pm.Transform
	}
	return nil
}

// ForecastMetadata is a mixin containing forecast extension attributes.
// Horizon is empty when the forecast horizon varies per band.
type ForecastMetadata struct {
	ReferenceTime time.Time
	Horizon       string
}

// Apply implements the ItemMixin interface
func (fm ForecastMetadata) Apply(item *Item) error {
	item.AddExtension(ForecastExtension)
	item.Properties["forecast:reference_datetime"] = FormatTimestamp(fm.ReferenceTime)
	if fm.Horizon != "" {
		item.Properties["forecast:horizon"] = fm.Horizon
	}
	return nil
}

// RasterBand is one entry of a raster extension band list. The grib:* and
// forecast:* keys are only populated when the value differs between bands.
type RasterBand struct {
	DataType    string   `json:"data_type,omitempty"`
	NoData      *float64 `json:"nodata,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Scale       *float64 `json:"scale,omitempty"`
	Offset      *float64 `json:"offset,omitempty"`
	Description string   `json:"description,omitempty"`
	Discipline  string   `json:"grib:discipline,omitempty"`
	Element     string   `json:"grib:element,omitempty"`
	ShortName   string   `json:"grib:short_name,omitempty"`
	Center      string   `json:"grib:center,omitempty"`
	Horizon     string   `json:"forecast:horizon,omitempty"`
}

// RasterBands is a mixin attaching raster extension band metadata to one of
// the item's existing assets
type RasterBands struct {
	AssetKey string
	Bands    []RasterBand
}

// Apply implements the ItemMixin interface
func (rb RasterBands) Apply(item *Item) error {
	asset, ok := item.Assets[rb.AssetKey]
	if !ok {
		return fmt.Errorf("No asset under key `%s` to attach raster bands to", rb.AssetKey)
	}
	item.AddExtension(RasterExtension)
	asset.Bands = rb.Bands
	return nil
}
