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

package pushCommand

import (
	app "github.com/containersec/cs-cli/cs-cli/modules"
	"github.com/containersec/cs-cli/cs-cli/modules/cli/push"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/urfave/cli"
)

// PushCommand uploads a local image to the account's ingestion registry.
func PushCommand() cli.Command {
	return cli.Command{
		Name:         "push",
		Usage:        "Push a local image to the ingestion registry for scanning.",
		ArgsUsage:    push.PushImageFormat,
		Before:       app.BeforeApp,
		Action:       push.ImagePush,
		Flags:        pushFlags(),
		OnUsageError: flags.UsageErrorFactory("push"),
	}
}

func pushFlags() []cli.Flag {
	pushFlags := []cli.Flag{
		cli.StringFlag{
			Name:  flags.RemoteRepoFlag,
			Usage: "[Optional] Specifies the repository name the image is stored under in your account. Defaults to the local repository name.",
		},
		cli.StringFlag{
			Name:  flags.RemoteTagFlag,
			Usage: "[Optional] Specifies the tag applied to the uploaded image. Defaults to the local tag.",
		},
		cli.DurationFlag{
			Name:  flags.TimeoutFlag,
			Usage: "[Optional] Specifies how long to wait for the upload before giving up (for example 10m). Defaults to no timeout.",
		},
	}
	return append(pushFlags, flags.OptionalCredsFlags()...)
}
