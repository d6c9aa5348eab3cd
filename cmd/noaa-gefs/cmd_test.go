package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stactools-packages/noaa-gefs/gefs"
	"github.com/stactools-packages/noaa-gefs/model"
)

func TestCreateCliApp_Commands(t *testing.T) {
	// Tested code
	app := createCliApp()

	// Asserts
	names := []string{}
	for _, command := range app.Commands {
		names = append(names, command.Name)
	}
	assert.Contains(t, names, "create-collection")
	assert.Contains(t, names, "create-item")
	assert.Contains(t, names, "version")
}

func TestCreateCollectionAction_WritesDocument(t *testing.T) {
	// Mock
	destination := filepath.Join(t.TempDir(), "collection.json")

	// Tested code
	err := createCliApp().Run([]string{"noaa-gefs", "create-collection", "--start-time", "2022-01-21T00:00:00Z", destination})

	// Asserts
	assert.Nil(t, err)
	data, readErr := os.ReadFile(destination)
	assert.Nil(t, readErr)

	var collection model.Collection
	assert.Nil(t, json.Unmarshal(data, &collection))
	assert.Equal(t, gefs.DefaultCollectionID, collection.ID)
	assert.Equal(t, "2022-01-21T00:00:00Z", *collection.Extent.Temporal.Interval[0][0])

	selfHref := ""
	for _, link := range collection.Links {
		if link.Rel == "self" {
			selfHref = link.Href
		}
	}
	assert.Equal(t, destination, selfHref)
}

func TestCreateCollectionAction_CustomID(t *testing.T) {
	// Mock
	destination := filepath.Join(t.TempDir(), "collection.json")

	// Tested code
	err := createCliApp().Run([]string{"noaa-gefs", "create-collection", "--id", "noaa-gefs-test", destination})

	// Asserts
	assert.Nil(t, err)
	data, _ := os.ReadFile(destination)
	var collection model.Collection
	assert.Nil(t, json.Unmarshal(data, &collection))
	assert.Equal(t, "noaa-gefs-test", collection.ID)
}

func TestCreateCollectionAction_BadStartTime(t *testing.T) {
	// Mock
	destination := filepath.Join(t.TempDir(), "collection.json")

	// Tested code
	err := createCliApp().Run([]string{"noaa-gefs", "create-collection", "--start-time", "yesterday", destination})

	// Asserts
	assert.NotNil(t, err)
}

func TestCreateCollectionAction_MissingDestination(t *testing.T) {
	err := createCliApp().Run([]string{"noaa-gefs", "create-collection"})
	assert.NotNil(t, err)
}

func TestCreateItemAction_MissingArguments(t *testing.T) {
	err := createCliApp().Run([]string{"noaa-gefs", "create-item", "only-one-arg"})
	assert.NotNil(t, err)
}

func TestCreateItemAction_MissingParentCollection(t *testing.T) {
	// Mock
	tmpDir := t.TempDir()

	// Tested code
	err := createCliApp().Run([]string{
		"noaa-gefs", "create-item",
		"--collection", filepath.Join(tmpDir, "does-not-exist.json"),
		filepath.Join(tmpDir, "in.grib2"), filepath.Join(tmpDir, "item.json"),
	})

	// Asserts
	assert.NotNil(t, err)
}

func TestReadCollection(t *testing.T) {
	// Mock
	destination := filepath.Join(t.TempDir(), "collection.json")
	assert.Nil(t, createCliApp().Run([]string{"noaa-gefs", "create-collection", destination}))

	// Tested code
	collection, err := readCollection(destination)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, gefs.DefaultCollectionID, collection.ID)
}

func TestReadCollection_NotACollection(t *testing.T) {
	// Mock
	destination := filepath.Join(t.TempDir(), "other.json")
	assert.Nil(t, os.WriteFile(destination, []byte(`{"type": "Feature"}`), 0644))

	// Tested code
	_, err := readCollection(destination)

	// Asserts
	assert.NotNil(t, err)
}
