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

package push

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	dockerclient "github.com/containersec/cs-cli/cs-cli/modules/clients/docker"
	"github.com/containersec/cs-cli/cs-cli/modules/clients/scan"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/config"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/urfave/cli"
)

// PushImageFormat describes the argument the push command accepts.
const PushImageFormat = relay.ReferenceFormat

// ImagePush uploads a local image to the scanning service's registry.
func ImagePush(c *cli.Context) {
	rdwr, err := config.NewReadWriter()
	if err != nil {
		logrus.Fatal("Error executing 'push': ", err)
	}

	cmdConfig, err := config.NewCommandConfig(c, rdwr)
	if err != nil {
		logrus.Fatal("Error executing 'push': ", err)
	}

	dockerClient, err := dockerclient.NewClient()
	if err != nil {
		logrus.Fatal("Error executing 'push': ", err)
	}
	scanClient := scan.NewClient(cmdConfig.APIEndpoint, cmdConfig.Account)
	tokens := scan.NewCachedTokenSource(scanClient)

	if err := pushImage(c, cmdConfig, dockerClient, tokens); err != nil {
		logrus.Fatal("Error executing 'push': ", err)
	}
}

func pushImage(c *cli.Context, cmdConfig *config.CommandConfig, dockerClient dockerclient.Client, tokens relay.TokenSource) error {
	args := c.Args()
	if len(args) != 1 {
		return fmt.Errorf("push requires exactly 1 argument [%s]", PushImageFormat)
	}

	ctx := context.Background()
	if timeout := c.Duration(flags.TimeoutFlag); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	uploader := relay.New(dockerClient, dockerClient, tokens)
	result, err := uploader.Push(ctx, cmdConfig.Account, relay.PushRequest{
		Image:            args[0],
		RemoteRepository: c.String(flags.RemoteRepoFlag),
		RemoteTag:        c.String(flags.RemoteTagFlag),
	})
	if err != nil {
		if result != nil && result.FailedLayer != "" {
			logrus.WithFields(logrus.Fields{
				"layer": result.FailedLayer,
			}).Error("Layer failed to upload")
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"coordinate": result.Coordinate.String(),
	}).Info("Image uploaded for scanning")
	fmt.Println(result.Digest)
	return nil
}
