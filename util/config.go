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

package util

import "os"

// Environment variables
const (
	GEFS_COLLECTION_ID = "GEFS_COLLECTION_ID"
	GEFS_THUMBNAIL_URL = "GEFS_THUMBNAIL_URL"
)

// GetCollectionIDOverride returns the GEFS_COLLECTION_ID environment
// variable, or an empty string when no override is configured
func GetCollectionIDOverride() string {
	id, ok := os.LookupEnv(GEFS_COLLECTION_ID)
	if ok {
		LogInfo(&BasicLogContext{}, "Using collection ID override from environment: "+id)
	}
	return id
}

// GetThumbnailURL returns the GEFS_THUMBNAIL_URL environment variable,
// or an empty string when no default thumbnail is configured
func GetThumbnailURL() string {
	thumbnailURL, ok := os.LookupEnv(GEFS_THUMBNAIL_URL)
	if ok {
		LogInfo(&BasicLogContext{}, "Using thumbnail URL from environment: "+thumbnailURL)
	}
	return thumbnailURL
}
