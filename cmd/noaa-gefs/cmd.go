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
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "0.1.0"

var commands = cli.Commands{
	cli.Command{
		Name:      "create-collection",
		Aliases:   []string{"c"},
		Usage:     "Create the GEFS STAC collection document",
		ArgsUsage: "DESTINATION",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "id", Usage: "custom collection ID"},
			cli.StringFlag{Name: "thumbnail", Usage: "URL of a PNG or JPEG collection thumbnail asset"},
			cli.StringFlag{Name: "start-time", Usage: "start timestamp (RFC 3339) for the temporal extent; defaults to now"},
		},
		Action: createCollectionAction,
	},
	cli.Command{
		Name:      "create-item",
		Aliases:   []string{"i"},
		Usage:     "Create a STAC item from a GEFS GRIB2 file",
		ArgsUsage: "SOURCE DESTINATION",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "id", Usage: "custom item ID"},
			cli.StringFlag{Name: "collection", Usage: "href of an existing collection document to link the item to"},
		},
		Action: createItemAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the noaa-gefs CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "noaa-gefs"
	app.Usage = "Generate STAC metadata for NOAA GEFS GRIB2 assets"
	app.Version = version
	app.Commands = commands
	return
}

func versionAction(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, version)
	return nil
}
