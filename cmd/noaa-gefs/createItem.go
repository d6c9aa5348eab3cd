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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stactools-packages/noaa-gefs/gefs"
	"github.com/stactools-packages/noaa-gefs/model"
	"github.com/stactools-packages/noaa-gefs/util"
	cli "gopkg.in/urfave/cli.v1"
)

func createItemAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	if c.NArg() != 2 {
		return fmt.Errorf("create-item expects SOURCE and DESTINATION arguments, got %d", c.NArg())
	}
	source := c.Args().Get(0)
	destination := c.Args().Get(1)

	opts := gefs.ItemOptions{ID: c.String("id")}
	if collectionHref := c.String("collection"); collectionHref != "" {
		collection, err := readCollection(collectionHref)
		if err != nil {
			return util.LogSimpleErr(logContext, fmt.Sprintf("Failed to read parent collection at %v.", collectionHref), err)
		}
		opts.Collection = collection
		opts.CollectionURL = collectionHref
	}

	item, err := gefs.CreateItem(source, opts, logContext)
	if err != nil {
		return err
	}

	if err = writeDocument(destination, item); err != nil {
		return util.LogSimpleErr(logContext, fmt.Sprintf("Failed to write item to %v.", destination), err)
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote item `%s` to %v", item.ID, destination))
	return nil
}

// readCollection loads an existing collection document so the item can be
// linked to it
func readCollection(href string) (*model.Collection, error) {
	data, err := os.ReadFile(href)
	if err != nil {
		return nil, err
	}
	var collection model.Collection
	if err = json.Unmarshal(data, &collection); err != nil {
		return nil, err
	}
	if collection.ID == "" {
		return nil, fmt.Errorf("document at %s has no collection ID", href)
	}
	return &collection, nil
}
