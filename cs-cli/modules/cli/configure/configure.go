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

package configure

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/config"
	"github.com/urfave/cli"
)

const defaultProfileName = "default"

// ConfigureProfile is the callback for the configure profile subcommand. It
// stores an API key pair (and optional endpoint overrides) as a named profile.
func ConfigureProfile(context *cli.Context) {
	profile, profileName, err := profileFromCli(context)
	if err != nil {
		logrus.Fatal("Error executing 'configure profile': ", err)
	}
	rdwr, err := config.NewReadWriter()
	if err != nil {
		logrus.Fatal("Error executing 'configure profile': ", err)
	}
	if err = saveProfile(profileName, profile, rdwr); err != nil {
		logrus.Fatal("Error executing 'configure profile': ", err)
	}
}

// SetDefaultProfile is the callback for the configure profile default
// subcommand.
func SetDefaultProfile(context *cli.Context) {
	profileName := context.String(flags.ProfileNameFlag)
	if profileName == "" {
		logrus.Fatalf("Error executing 'configure profile default': Missing required argument '%s'", flags.ProfileNameFlag)
	}
	rdwr, err := config.NewReadWriter()
	if err != nil {
		logrus.Fatal("Error executing 'configure profile default': ", err)
	}
	if err = rdwr.SetDefaultProfile(profileName); err != nil {
		logrus.Fatal("Error executing 'configure profile default': ", err)
	}
	logrus.Infof("Set default profile to %s", profileName)
}

// profileFromCli builds a profile from CLI flags, validating the required
// credential fields.
func profileFromCli(context *cli.Context) (*config.Profile, string, error) {
	accessKey := context.String(flags.AccessKeyFlag)
	secretKey := context.String(flags.SecretKeyFlag)

	if accessKey == "" {
		return nil, "", fmt.Errorf("Missing required argument '%s'", flags.AccessKeyFlag)
	}
	if secretKey == "" {
		return nil, "", fmt.Errorf("Missing required argument '%s'", flags.SecretKeyFlag)
	}

	profileName := context.String(flags.ProfileNameFlag)
	if profileName == "" {
		profileName = defaultProfileName
	}

	profile := &config.Profile{
		AccessKey:   accessKey,
		SecretKey:   secretKey,
		Namespace:   context.String(flags.NamespaceFlag),
		APIEndpoint: context.String(flags.EndpointFlag),
		Registry:    context.String(flags.RegistryFlag),
	}
	return profile, profileName, nil
}

// saveProfile does the actual write. This isolated method is useful for
// testing.
func saveProfile(profileName string, profile *config.Profile, rdwr config.ReadWriter) error {
	if err := rdwr.SaveProfile(profileName, profile); err != nil {
		return err
	}
	logrus.Infof("Saved credentials for profile %s", profileName)
	return nil
}
