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

package imagesCommand

import (
	app "github.com/containersec/cs-cli/cs-cli/modules"
	"github.com/containersec/cs-cli/cs-cli/modules/cli/images"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/urfave/cli"
)

// ImagesCommand lists images uploaded to the scanning service.
func ImagesCommand() cli.Command {
	return cli.Command{
		Name:         "images",
		Usage:        "List images uploaded to your account, with their scan status.",
		ArgsUsage:    images.ListImageFormat,
		Before:       app.BeforeApp,
		Action:       images.ImageList,
		Flags:        imagesFlags(),
		OnUsageError: flags.UsageErrorFactory("images"),
	}
}

func imagesFlags() []cli.Flag {
	imagesFlags := []cli.Flag{
		cli.StringFlag{
			Name:  flags.StatusFlag,
			Usage: "[Optional] Filters images by scan status. Options: queued, scanning, completed or failed.",
		},
	}
	return append(imagesFlags, flags.OptionalCredsFlags()...)
}
