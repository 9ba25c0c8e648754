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

package reportCommand

import (
	app "github.com/containersec/cs-cli/cs-cli/modules"
	"github.com/containersec/cs-cli/cs-cli/modules/cli/report"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/urfave/cli"
)

// ReportCommand fetches the scan report for an uploaded image.
func ReportCommand() cli.Command {
	return cli.Command{
		Name:         "report",
		Usage:        "Show the scan report for an uploaded image.",
		ArgsUsage:    report.ReportImageFormat,
		Before:       app.BeforeApp,
		Action:       report.GetReport,
		Flags:        reportFlags(),
		OnUsageError: flags.UsageErrorFactory("report"),
	}
}

func reportFlags() []cli.Flag {
	reportFlags := []cli.Flag{
		cli.BoolFlag{
			Name:  flags.WaitFlag,
			Usage: "[Optional] Polls the service until the scan reaches a terminal status.",
		},
		cli.DurationFlag{
			Name:  flags.TimeoutFlag,
			Usage: "[Optional] Specifies how long to wait for the scan to complete (for example 10m). Only meaningful together with --wait. Defaults to no timeout.",
		},
	}
	return append(reportFlags, flags.OptionalCredsFlags()...)
}
