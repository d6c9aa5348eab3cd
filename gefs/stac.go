// Copyright 2024, the stactools-packages noaa-gefs authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gefs

import (
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/stactools-packages/noaa-gefs/model"
	"github.com/stactools-packages/noaa-gefs/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// CollectionOptions are the options for CreateCollection
type CollectionOptions struct {
	ID        string     // collection ID; DefaultCollectionID when empty
	Thumbnail string     // URL of a PNG or JPEG preview asset; no asset when empty
	StartTime *time.Time // start of the temporal extent; now (UTC) when nil
}

// CreateCollection builds the STAC collection document for the GEFS dataset
// family. The result is constant apart from the ID, thumbnail asset and
// temporal extent start.
func CreateCollection(opts CollectionOptions) *model.Collection {
	id := opts.ID
	if id == "" {
		id = DefaultCollectionID
	}
	start := time.Now().UTC()
	if opts.StartTime != nil {
		start = opts.StartTime.UTC()
	}
	startStr := model.FormatTimestamp(start)

	collection := &model.Collection{
		Type:           "Collection",
		StacVersion:    model.StacVersion,
		StacExtensions: []string{},
		ID:             id,
		Title:          Title,
		Description:    Description,
		Keywords:       Keywords,
		License:        "proprietary",
		Providers:      Providers,
		Extent: model.Extent{
			Spatial:  model.SpatialExtent{Bbox: [][]float64{{-180.0, 90.0, 180.0, -90.0}}},
			Temporal: model.TemporalExtent{Interval: [][]*string{{&startStr, nil}}},
		},
		Links: []model.Link{},
	}

	collection.AddLink(LinkLicense)
	collection.AddLink(LinkHome)

	if opts.Thumbnail != "" {
		mediaType := JPEGMediaType
		if strings.HasSuffix(opts.Thumbnail, ".png") {
			mediaType = PNGMediaType
		}
		collection.AddAsset("thumbnail", &model.Asset{
			Href:  opts.Thumbnail,
			Title: "Preview",
			Type:  mediaType,
			Roles: []string{"thumbnail"},
		})
	}

	collection.AddExtension(model.RasterExtension)
	collection.AddExtension(model.ItemAssetsExtension)
	collection.ItemAssets = map[string]*model.Asset{
		Grib2AssetKey: {Title: Grib2Title, Type: Grib2MediaType, Roles: Grib2Roles},
		IndexAssetKey: {Title: IndexTitle, Type: IndexMediaType, Roles: IndexRoles},
	}

	return collection
}

// ItemOptions are the options for CreateItem
type ItemOptions struct {
	ID            string            // item ID; derived from the source name when empty
	Collection    *model.Collection // parent collection, if any
	CollectionURL string            // href recorded on the collection link
}

// bandValues holds the normalized tag values of one band, ready for
// reconciliation
type bandValues struct {
	discipline string
	element    string
	shortName  string
	unit       string
	center     string
	comment    string
	horizon    string
	dataType   string
	nodata     *float64
	scale      *float64
	offset     *float64
}

// valueSet collects distinct non-empty string values in first-seen order.
// Blank values are counted separately: a tag that is absent on some bands
// must not be promoted to an item-level property asserting it for all.
type valueSet struct {
	values []string
	blank  bool
}

func (s *valueSet) add(value string) {
	if value == "" {
		s.blank = true
		return
	}
	for _, curr := range s.values {
		if curr == value {
			return
		}
	}
	s.values = append(s.values, value)
}

// single returns the collected value iff exactly one distinct value was seen
// on every band
func (s *valueSet) single() (string, bool) {
	if len(s.values) == 1 && !s.blank {
		return s.values[0], true
	}
	return "", false
}

// CreateItem builds a STAC item for the GRIB2 asset at sourceHref. It walks
// the asset's bands, aggregates their tag values and reconciles them into
// item-level vs. band-level properties: a tag shared by every band is
// recorded once on the item, a tag that differs stays on the individual
// raster band entries.
func CreateItem(sourceHref string, opts ItemOptions, context util.LogContext) (*model.Item, error) {
	info, err := readDatasetFunc(sourceHref)
	if err != nil {
		return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to read raster asset at %v.", sourceHref), err)
	}
	if len(info.Bands) == 0 {
		return nil, util.Error{
			LogMsg:    fmt.Sprintf("Raster asset at %v contains no bands", sourceHref),
			SimpleMsg: "The source file contains no raster bands.",
			URL:       sourceHref,
		}.Log(context, "")
	}

	var (
		disciplines valueSet
		elements    valueSet
		shortNames  valueSet
		units       valueSet
		centers     valueSet
		comments    valueSet
		horizons    valueSet
		refTimes    []time.Time
		validTimes  []time.Time
	)
	perBand := make([]bandValues, len(info.Bands))

	for index, band := range info.Bands {
		curr := bandValues{
			discipline: codedLabel(band.Discipline),
			element:    band.Element,
			shortName:  band.ShortName,
			unit:       parseGribUnit(band.Unit),
			comment:    band.Comment,
			dataType:   band.DataType,
			nodata:     band.NoData,
			scale:      band.Scale,
			offset:     band.Offset,
		}

		ids := parseTagBlock(band.IDs)
		curr.center = codedLabel(ids["CENTER"])
		centers.add(curr.center)

		refTimeTag := band.RefTime
		if refTimeTag == "" {
			refTimeTag = ids["REF_TIME"]
		}
		if refTimeTag != "" {
			refTime, err := parseGribTime(refTimeTag)
			if err != nil {
				return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to parse reference time of band %d.", index+1), err)
			}
			refTimes = appendDistinctTime(refTimes, refTime)
		}

		if band.ValidTime != "" {
			validTime, err := parseGribTime(band.ValidTime)
			if err != nil {
				return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to parse valid time of band %d.", index+1), err)
			}
			validTimes = appendDistinctTime(validTimes, validTime)
		}

		if band.ForecastSeconds != "" {
			offset, err := parseGribSeconds(band.ForecastSeconds)
			if err != nil {
				return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to parse forecast offset of band %d.", index+1), err)
			}
			curr.horizon = isoDuration(offset)
		}

		disciplines.add(curr.discipline)
		elements.add(curr.element)
		shortNames.add(curr.shortName)
		units.add(curr.unit)
		comments.add(curr.comment)
		horizons.add(curr.horizon)
		perBand[index] = curr
	}

	// Bands of one GEFS file always come from a single model run; differing
	// reference times mean the input data is inconsistent.
	if len(refTimes) == 0 {
		return nil, util.Error{
			LogMsg:    fmt.Sprintf("Raster asset at %v carries no reference time tags", sourceHref),
			SimpleMsg: "The source file carries no forecast reference time.",
			URL:       sourceHref,
		}.Log(context, "")
	}
	if len(refTimes) > 1 {
		return nil, util.Error{
			LogMsg:    fmt.Sprintf("Raster asset at %v has %d distinct reference times across its bands", sourceHref, len(refTimes)),
			SimpleMsg: "The source file reports multiple forecast reference times; this is inconsistent input data.",
			URL:       sourceHref,
		}.Log(context, "")
	}

	result := buildGribItemResult(sourceHref, opts, info, perBand, gribAggregates{
		disciplines: disciplines,
		elements:    elements,
		shortNames:  shortNames,
		units:       units,
		centers:     centers,
		comments:    comments,
		horizons:    horizons,
		refTime:     refTimes[0],
		validTimes:  validTimes,
	}, context)

	return result.StacItem()
}

// gribAggregates bundles the reconciled tag sets of a dataset
type gribAggregates struct {
	disciplines valueSet
	elements    valueSet
	shortNames  valueSet
	units       valueSet
	centers     valueSet
	comments    valueSet
	horizons    valueSet
	refTime     time.Time
	validTimes  []time.Time
}

// buildGribItemResult assembles the model result from the raster shape,
// the per-band values and the reconciled aggregates
func buildGribItemResult(sourceHref string, opts ItemOptions, info *datasetInfo, perBand []bandValues, agg gribAggregates, context util.LogContext) model.GribItemResult {
	id := opts.ID
	if id == "" {
		id = deriveItemID(sourceHref)
	}

	basic := model.BasicItemResult{
		ID:            id,
		CollectionURL: opts.CollectionURL,
	}
	if opts.Collection != nil {
		basic.Collection = opts.Collection.ID
	}

	// Temporal reconciliation: a single distinct valid time is an instant,
	// two bound a closed range, more than two leave the range open-ended.
	// Absent valid times fall back to the reference time.
	sort.Slice(agg.validTimes, func(i, j int) bool { return agg.validTimes[i].Before(agg.validTimes[j]) })
	switch len(agg.validTimes) {
	case 0:
		refTime := agg.refTime
		basic.Datetime = &refTime
	case 1:
		basic.Datetime = &agg.validTimes[0]
	case 2:
		basic.StartDatetime = &agg.validTimes[0]
		basic.EndDatetime = &agg.validTimes[1]
	default:
		basic.StartDatetime = &agg.validTimes[0]
	}

	bbox := boundsFromTransform(info)
	basic.Bbox = geojson.BoundingBox{bbox[0], bbox[1], bbox[2], bbox[3]}
	basic.Geometry = geojson.NewPolygon([][][]float64{{
		{bbox[0], bbox[1]}, {bbox[2], bbox[1]}, {bbox[2], bbox[3]}, {bbox[0], bbox[3]}, {bbox[0], bbox[1]},
	}})

	gm := model.GribMetadata{}
	sharedDiscipline, disciplineShared := agg.disciplines.single()
	if disciplineShared {
		gm.Discipline = sharedDiscipline
	}
	sharedElement, elementShared := agg.elements.single()
	if elementShared {
		gm.Element = sharedElement
	}
	sharedShortName, shortNameShared := agg.shortNames.single()
	if shortNameShared {
		gm.ShortName = sharedShortName
	}
	sharedUnit, unitShared := agg.units.single()
	if unitShared {
		gm.Unit = sharedUnit
	}
	sharedCenter, centerShared := agg.centers.single()
	if centerShared {
		gm.Center = sharedCenter
	} else if len(agg.centers.values) > 1 {
		// unusual but not fatal; the centers stay on the individual bands
		util.LogAlert(context, fmt.Sprintf("Raster asset at %v reports multiple originating centers: %v", sourceHref, agg.centers.values))
	}
	sharedComment, commentShared := agg.comments.single()
	if commentShared {
		gm.Comment = sharedComment
	}

	fm := model.ForecastMetadata{ReferenceTime: agg.refTime}
	sharedHorizon, horizonShared := agg.horizons.single()
	if horizonShared {
		fm.Horizon = sharedHorizon
	}

	bands := make([]model.RasterBand, len(perBand))
	for index, curr := range perBand {
		band := model.RasterBand{
			DataType: curr.dataType,
			NoData:   curr.nodata,
			Scale:    curr.scale,
			Offset:   curr.offset,
		}
		if !disciplineShared {
			band.Discipline = curr.discipline
		}
		if !elementShared {
			band.Element = curr.element
		}
		if !shortNameShared {
			band.ShortName = curr.shortName
		}
		if !centerShared {
			band.Center = curr.center
		}
		if !unitShared {
			band.Unit = curr.unit
		}
		if !commentShared {
			band.Description = curr.comment
		}
		if !horizonShared {
			band.Horizon = curr.horizon
		}
		bands[index] = band
	}

	return model.GribItemResult{
		BasicItemResult: basic,
		GribMetadata:    gm,
		ProjectionMetadata: model.ProjectionMetadata{
			EPSG:      4326,
			Bbox:      bbox,
			Shape:     []int{info.YSize, info.XSize},
			Transform: affineTransform(info.GeoTransform),
		},
		ForecastMetadata: fm,
		Assets: map[string]*model.Asset{
			Grib2AssetKey: {Href: sourceHref, Title: Grib2Title, Type: Grib2MediaType, Roles: Grib2Roles},
			IndexAssetKey: {Href: sourceHref + IndexSuffix, Title: IndexTitle, Type: IndexMediaType, Roles: IndexRoles},
		},
		Bands: model.RasterBands{AssetKey: Grib2AssetKey, Bands: bands},
	}
}

// deriveItemID turns a source href into a catalog-friendly identifier:
// `.../geavg.t00z.pgrb2a.0p50.f000` -> `geavg-t00z-pgrb2a-0p50-f000`
func deriveItemID(sourceHref string) string {
	name := path.Base(sourceHref)
	if parsed, err := url.Parse(sourceHref); err == nil && parsed.Path != "" {
		name = path.Base(parsed.Path)
	}
	return strings.ReplaceAll(name, ".", "-")
}

// boundsFromTransform derives the [minLon, minLat, maxLon, maxLat] bounds of
// the raster grid. GEFS grids are published on a 0..360 longitude axis;
// full-globe grids are normalized to -180..180, grids entirely past the
// antimeridian are shifted back into range, and grids that straddle it are
// clamped at 180.
func boundsFromTransform(info *datasetInfo) []float64 {
	gt := info.GeoTransform
	xSize := float64(info.XSize)
	ySize := float64(info.YSize)

	minLon := gt[0]
	maxLon := gt[0] + gt[1]*xSize + gt[2]*ySize
	maxLat := gt[3]
	minLat := gt[3] + gt[4]*xSize + gt[5]*ySize
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}

	if maxLon > 180 {
		switch {
		case maxLon-minLon >= 360:
			minLon, maxLon = -180, 180
		case minLon >= 180:
			minLon -= 360
			maxLon -= 360
		default:
			// grid straddles the antimeridian; clamp instead of emitting
			// out-of-range longitudes
			maxLon = 180
		}
	}
	if minLat < -90 {
		minLat = -90
	}
	if maxLat > 90 {
		maxLat = 90
	}

	return []float64{minLon, minLat, maxLon, maxLat}
}

// affineTransform reorders a GDAL geotransform into the affine order the
// projection extension expects
func affineTransform(gt [6]float64) []float64 {
	return []float64{gt[1], gt[2], gt[0], gt[4], gt[5], gt[3]}
}

func appendDistinctTime(times []time.Time, t time.Time) []time.Time {
	for _, curr := range times {
		if curr.Equal(t) {
			return times
		}
	}
	return append(times, t)
}
