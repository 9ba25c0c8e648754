// Copyright 2019-2020 ContainerSec, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/configure"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/images"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/push"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/report"
	"github.com/containersec/cs-cli/cs-cli/modules/utils/logger"
	"github.com/containersec/cs-cli/cs-cli/modules/version"
	"github.com/urfave/cli"
)

func main() {
	logger.SetupLogger()

	app := cli.NewApp()
	app.Name = version.AppName
	app.Usage = "Command line interface for uploading container images for security scanning"
	app.Version = version.String()
	app.Author = "ContainerSec"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  flags.VerboseFlag + ", debug",
			Usage: "Increase the verbosity of command output to aid in diagnostics.",
		},
	}

	app.Commands = []cli.Command{
		configureCommand.ConfigureCommand(),
		pushCommand.PushCommand(),
		imagesCommand.ImagesCommand(),
		reportCommand.ReportCommand(),
	}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Debug(err)
	}
}
