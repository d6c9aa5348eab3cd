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

import "github.com/stactools-packages/noaa-gefs/model"

// DefaultCollectionID is the collection identifier used unless overridden
const DefaultCollectionID = "noaa-gefs"

// Title is the collection title
const Title = "NOAA Global Ensemble Forecast System (GEFS)"

// Description is the collection description
const Description = "The Global Ensemble Forecast System (GEFS) is a weather model created by the " +
	"National Centers for Environmental Prediction (NCEP) that generates 21 separate " +
	"forecasts (ensemble members) to address underlying uncertainties in the input " +
	"data such limited coverage, instruments or observing systems biases, and the " +
	"limitations of the model itself. " +
	"GEFS quantifies these uncertainties by generating multiple forecasts, which in " +
	"turn produce a range of potential outcomes based on differences or perturbations " +
	"applied to the data after it has been incorporated into the model. " +
	"Each forecast compensates for a different set of uncertainties.\n\n" +
	"GEFS runs 4 times per day (00; 06; 12; 18UTC) with 31 members at each lead-time " +
	"at C384L64 (about 25 km horizontal resolution and 64 vertical hybrid levels for " +
	"atmosphere component) and out to 16 days at each cycle, except for 35 days at 0000 UTC."

// Keywords are the collection keywords
var Keywords = []string{"NOAA", "GEFS", "global", "ensemble", "forecast", "GRIB2"}

// Providers is the collection provider list
var Providers = []model.Provider{
	{
		Name:  "NOAA National Centers for Environmental Information",
		Roles: []string{"producer", "licensor"},
		URL:   "https://www.ncei.noaa.gov",
	},
}

// GEFS data itself carries no license document; the NWS disclaimer linked
// below states it is public domain, as does the GEFS registry entry on AWS.
var LinkLicense = model.Link{
	Rel:   "license",
	Href:  "https://www.weather.gov/disclaimer",
	Type:  "text/html",
	Title: "Public Domain",
}

// LinkHome points at the GEFS product homepage
var LinkHome = model.Link{
	Rel:   "about",
	Href:  "https://www.ncei.noaa.gov/products/weather-climate-models/global-ensemble-forecast",
	Type:  "text/html",
	Title: "GEFS Homepage",
}

// GRIB2 data asset
const (
	Grib2AssetKey  = "grib2"
	Grib2Title     = "GRIB2 file"
	Grib2MediaType = "application/wmo-GRIB2"
)

// Grib2Roles are the roles of the GRIB2 data asset
var Grib2Roles = []string{"data", "source"}

// Index sidecar asset; NOAA publishes the band index as a `.idx` sibling of
// each GRIB2 file. It looks like a CSV file but with `:` as the delimiter.
const (
	IndexAssetKey  = "index"
	IndexTitle     = "Index file"
	IndexMediaType = "text/plain"
	IndexSuffix    = ".idx"
)

// IndexRoles are the roles of the index sidecar asset
var IndexRoles = []string{"metadata", "index"}

// Thumbnail media types
const (
	PNGMediaType  = "image/png"
	JPEGMediaType = "image/jpeg"
)
