package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/stactools-packages/noaa-gefs/gefs"
	"github.com/stactools-packages/noaa-gefs/model"
	"github.com/stactools-packages/noaa-gefs/util"
	cli "gopkg.in/urfave/cli.v1"
)

func createCollectionAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	if c.NArg() != 1 {
		return fmt.Errorf("create-collection expects exactly one DESTINATION argument, got %d", c.NArg())
	}
	destination := c.Args().Get(0)

	id := c.String("id")
	if id == "" {
		id = util.GetCollectionIDOverride()
	}
	thumbnail := c.String("thumbnail")
	if thumbnail == "" {
		thumbnail = util.GetThumbnailURL()
	}

	var startTime *time.Time
	if startStr := c.String("start-time"); startStr != "" {
		parsed, err := model.ParseAssetTime(startStr)
		if err != nil {
			return util.LogSimpleErr(logContext, "Failed to parse --start-time.", err)
		}
		startTime = &parsed
	}

	collection := gefs.CreateCollection(gefs.CollectionOptions{
		ID:        id,
		Thumbnail: thumbnail,
		StartTime: startTime,
	})
	collection.AddLink(model.Link{Rel: "self", Href: destination, Type: "application/json"})

	if err := writeDocument(destination, collection); err != nil {
		return util.LogSimpleErr(logContext, fmt.Sprintf("Failed to write collection to %v.", destination), err)
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote collection `%s` to %v", collection.ID, destination))
	return nil
}

// writeDocument serializes a catalog document as indented JSON
func writeDocument(destination string, document interface{}) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(destination, append(data, '\n'), 0644)
}
