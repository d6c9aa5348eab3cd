package model

import "github.com/venicegeo/geojson-go/geojson"

// StacVersion is the STAC spec version of the documents this package emits
const StacVersion = "1.0.0"

// STAC extension schemas referenced by the emitted documents
const (
	ItemAssetsExtension = "https://stac-extensions.github.io/item-assets/v1.0.0/schema.json"
	ProjectionExtension = "https://stac-extensions.github.io/projection/v1.1.0/schema.json"
	RasterExtension     = "https://stac-extensions.github.io/raster/v1.1.0/schema.json"
	ForecastExtension   = "https://stac-extensions.github.io/forecast/v0.1.0/schema.json"
)

// Link is a STAC link object
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Provider is a STAC provider object
type Provider struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	URL   string   `json:"url,omitempty"`
}

// Asset is a STAC asset object; Bands carries raster extension band metadata
type Asset struct {
	Href        string       `json:"href,omitempty"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Type        string       `json:"type,omitempty"`
	Roles       []string     `json:"roles,omitempty"`
	Bands       []RasterBand `json:"raster:bands,omitempty"`
}

// SpatialExtent is the spatial part of a STAC collection extent
type SpatialExtent struct {
	Bbox [][]float64 `json:"bbox"`
}

// TemporalExtent is the temporal part of a STAC collection extent; open
// interval ends are encoded as nulls
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Extent is a STAC collection extent
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// Collection is a STAC collection document
type Collection struct {
	Type           string            `json:"type"`
	StacVersion    string            `json:"stac_version"`
	StacExtensions []string          `json:"stac_extensions"`
	ID             string            `json:"id"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description"`
	Keywords       []string          `json:"keywords,omitempty"`
	License        string            `json:"license"`
	Providers      []Provider        `json:"providers,omitempty"`
	Extent         Extent            `json:"extent"`
	Links          []Link            `json:"links"`
	Assets         map[string]*Asset `json:"assets,omitempty"`
	ItemAssets     map[string]*Asset `json:"item_assets,omitempty"`
}

// AddLink appends a link to the collection
func (c *Collection) AddLink(link Link) {
	c.Links = append(c.Links, link)
}

// AddAsset attaches an asset to the collection under the given key
func (c *Collection) AddAsset(key string, asset *Asset) {
	if c.Assets == nil {
		c.Assets = map[string]*Asset{}
	}
	c.Assets[key] = asset
}

// AddExtension records an extension schema on the collection, once
func (c *Collection) AddExtension(uri string) {
	for _, curr := range c.StacExtensions {
		if curr == uri {
			return
		}
	}
	c.StacExtensions = append(c.StacExtensions, uri)
}

// Item is a STAC item document. An item is a GeoJSON feature with
// catalog-specific top-level members.
type Item struct {
	Type           string                 `json:"type"`
	StacVersion    string                 `json:"stac_version"`
	StacExtensions []string               `json:"stac_extensions"`
	ID             string                 `json:"id"`
	Geometry       interface{}            `json:"geometry"`
	Bbox           geojson.BoundingBox    `json:"bbox,omitempty"`
	Properties     map[string]interface{} `json:"properties"`
	Links          []Link                 `json:"links"`
	Assets         map[string]*Asset      `json:"assets"`
	Collection     string                 `json:"collection,omitempty"`
}

// AddLink appends a link to the item
func (i *Item) AddLink(link Link) {
	i.Links = append(i.Links, link)
}

// AddAsset attaches an asset to the item under the given key
func (i *Item) AddAsset(key string, asset *Asset) {
	if i.Assets == nil {
		i.Assets = map[string]*Asset{}
	}
	i.Assets[key] = asset
}

// AddExtension records an extension schema on the item, once
func (i *Item) AddExtension(uri string) {
	for _, curr := range i.StacExtensions {
		if curr == uri {
			return
		}
	}
	i.StacExtensions = append(i.StacExtensions, uri)
}
