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

package flags

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Flag names used by the cli.
const (
	// Configure
	AccessKeyFlag   = "access-key"
	SecretKeyFlag   = "secret-key"
	NamespaceFlag   = "namespace"
	EndpointFlag    = "endpoint"
	RegistryFlag    = "registry"
	ProfileFlag     = "cs-profile"
	ProfileNameFlag = "profile-name"
	VerboseFlag     = "verbose"

	// Push
	RemoteRepoFlag = "remote-repo"
	RemoteTagFlag  = "remote-tag"
	TimeoutFlag    = "timeout"

	// Images
	StatusFlag = "status"

	// Report
	WaitFlag = "wait"

	// Environment variables
	AccessKeyEnvVar = "CS_ACCESS_KEY"
	SecretKeyEnvVar = "CS_SECRET_KEY"
	EndpointEnvVar  = "CS_API_ENDPOINT"
	RegistryEnvVar  = "CS_REGISTRY"
	ProfileEnvVar   = "CS_PROFILE"
)

// OptionalCredsFlags provides the flags shared by every command that talks to
// the scanning service:
// OptionalAccessKeyFlag and OptionalSecretKeyFlag inline override the API key pair
// OptionalProfileFlag specifies the credentials profile to read from the config
// OptionalEndpointFlag and OptionalRegistryFlag override the service endpoints
func OptionalCredsFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   AccessKeyFlag,
			EnvVar: AccessKeyEnvVar,
			Usage:  "[Optional] Specifies the API access key to use. Defaults to the key configured using the configure command.",
		},
		cli.StringFlag{
			Name:   SecretKeyFlag,
			EnvVar: SecretKeyEnvVar,
			Usage:  "[Optional] Specifies the API secret key to use. Defaults to the key configured using the configure command.",
		},
		cli.StringFlag{
			Name:   ProfileFlag,
			EnvVar: ProfileEnvVar,
			Usage:  "[Optional] Specifies the name of the credentials profile to use. Defaults to the default profile configuration.",
		},
		cli.StringFlag{
			Name:  NamespaceFlag,
			Usage: "[Optional] Specifies the account namespace images are uploaded under. Defaults to the namespace configured using the configure command.",
		},
		cli.StringFlag{
			Name:   EndpointFlag,
			EnvVar: EndpointEnvVar,
			Usage:  "[Optional] Specifies the API endpoint to use.",
		},
		cli.StringFlag{
			Name:   RegistryFlag,
			EnvVar: RegistryEnvVar,
			Usage:  "[Optional] Specifies the ingestion registry host to push images to.",
		},
	}
}

// UsageErrorFactory Returns a usage error function for the specified command
func UsageErrorFactory(command string) func(*cli.Context, error, bool) error {
	return func(c *cli.Context, err error, isSubcommand bool) error {
		if err != nil {
			logrus.Error(err)
		}
		err = cli.ShowCommandHelp(c, command)
		if err != nil {
			logrus.Debug(err)
		}
		os.Exit(1)
		return err
	}
}
