package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// BasicItemResult holds the fields common to every generated item
type BasicItemResult struct {
	ID            string
	Geometry      interface{}
	Bbox          geojson.BoundingBox
	Collection    string
	CollectionURL string
	Datetime      *time.Time
	StartDatetime *time.Time
	EndDatetime   *time.Time
}

// StacItem implements the ItemCreator interface
func (r BasicItemResult) StacItem() (*Item, error) {
	properties := map[string]interface{}{}

	// "datetime" is required by the schema; null marks a pure range
	if r.Datetime != nil {
		properties["datetime"] = FormatTimestamp(*r.Datetime)
	} else {
		properties["datetime"] = nil
	}
	if r.StartDatetime != nil {
		properties["start_datetime"] = FormatTimestamp(*r.StartDatetime)
		if r.EndDatetime != nil {
			properties["end_datetime"] = FormatTimestamp(*r.EndDatetime)
		} else {
			// open-ended range
			properties["end_datetime"] = nil
		}
	}

	item := &Item{
		Type:           "Feature",
		StacVersion:    StacVersion,
		StacExtensions: []string{},
		ID:             r.ID,
		Geometry:       r.Geometry,
		Bbox:           r.Bbox,
		Properties:     properties,
		Links:          []Link{},
		Assets:         map[string]*Asset{},
	}

	if r.Collection != "" {
		item.Collection = r.Collection
		href := r.CollectionURL
		if href == "" {
			href = "./collection.json"
		}
		item.AddLink(Link{Rel: "collection", Href: href, Type: "application/json"})
	}

	return item, nil
}

// GribItemResult represents an item generated from a GRIB2 asset: the basic
// result plus the asset dictionary and the metadata mixins derived from the
// raster bands
type GribItemResult struct {
	BasicItemResult
	GribMetadata
	ProjectionMetadata
	ForecastMetadata
	Assets map[string]*Asset
	Bands  RasterBands
}

// StacItem implements the ItemCreator interface
func (r GribItemResult) StacItem() (*Item, error) {
	item, err := r.BasicItemResult.StacItem()
	if err != nil {
		return nil, err
	}

	for key, asset := range r.Assets {
		item.AddAsset(key, asset)
	}

	mixins := []ItemMixin{r.GribMetadata, r.ProjectionMetadata, r.ForecastMetadata, r.Bands}
	for _, mixin := range mixins {
		if err = mixin.Apply(item); err != nil {
			return nil, err
		}
	}

	return item, nil
}
