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

package configureCommand

import (
	"github.com/containersec/cs-cli/cs-cli/modules/cli/configure"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/urfave/cli"
)

// ConfigureCommand stores credentials profiles.
func ConfigureCommand() cli.Command {
	return cli.Command{
		Name:         "configure",
		Usage:        "Stores API credentials and endpoint settings.",
		OnUsageError: flags.UsageErrorFactory("configure"),
		Subcommands: []cli.Command{
			configureProfileCommand(),
		},
	}
}

func configureProfileCommand() cli.Command {
	return cli.Command{
		Name:         "profile",
		Usage:        "Stores a single credentials profile.",
		Action:       configure.ConfigureProfile,
		Flags:        configureProfileFlags(),
		OnUsageError: flags.UsageErrorFactory("profile"),
		Subcommands: []cli.Command{
			defaultProfileCommand(),
		},
	}
}

func defaultProfileCommand() cli.Command {
	return cli.Command{
		Name:         "default",
		Usage:        "Sets the default credentials profile.",
		Action:       configure.SetDefaultProfile,
		Flags:        defaultProfileFlags(),
		OnUsageError: flags.UsageErrorFactory("default"),
	}
}

func configureProfileFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  flags.AccessKeyFlag,
			Usage: "Specifies the API access key to store.",
		},
		cli.StringFlag{
			Name:  flags.SecretKeyFlag,
			Usage: "Specifies the API secret key to store.",
		},
		cli.StringFlag{
			Name:  flags.ProfileNameFlag,
			Usage: "[Optional] Specifies the name the profile is stored under. Defaults to 'default'.",
		},
		cli.StringFlag{
			Name:  flags.NamespaceFlag,
			Usage: "[Optional] Specifies the account namespace images are uploaded under.",
		},
		cli.StringFlag{
			Name:  flags.EndpointFlag,
			Usage: "[Optional] Specifies the API endpoint the profile targets.",
		},
		cli.StringFlag{
			Name:  flags.RegistryFlag,
			Usage: "[Optional] Specifies the ingestion registry host the profile targets.",
		},
	}
}

func defaultProfileFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  flags.ProfileNameFlag,
			Usage: "Specifies the name of the profile to set as default.",
		},
	}
}
