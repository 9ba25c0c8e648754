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

package config

import (
	"os"

	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// CommandConfig contains the resolved account context required to run a
// specific command.
type CommandConfig struct {
	Profile     string
	APIEndpoint string
	Account     relay.AccountContext
}

// RecursiveFlagSearch searches as far up the context as necessary. This
// function works no matter how many layers of nested subcommands there are.
// It is more powerful than merely calling context.String and
// context.GlobalString
func RecursiveFlagSearch(context *cli.Context, flag string) string {
	if context == nil {
		return ""
	} else if value := context.String(flag); value != "" {
		return value
	} else {
		return RecursiveFlagSearch(context.Parent(), flag)
	}
}

// NewCommandConfig creates a new CommandConfig from the local config file,
// environment variables, and flags.
//
// Credentials: order of resolution
//  1) Inline flags (--access-key, --secret-key)
//  2) Environment variables (CS_ACCESS_KEY, CS_SECRET_KEY)
//  3) Credentials file profile (--cs-profile or CS_PROFILE, else the default)
//
// Endpoint, registry and namespace resolve the same way, falling back to the
// service defaults where applicable.
func NewCommandConfig(context *cli.Context, rdwr ReadWriter) (*CommandConfig, error) {
	profileName := RecursiveFlagSearch(context, flags.ProfileFlag)
	if profileName == "" {
		profileName = os.Getenv(flags.ProfileEnvVar)
	}

	profile, err := rdwr.Get(profileName)
	if err != nil {
		// A config file is optional when the environment carries credentials.
		if os.Getenv(flags.AccessKeyEnvVar) == "" || os.Getenv(flags.SecretKeyEnvVar) == "" {
			return nil, errors.Wrap(err, "Error loading config")
		}
		profile = &Profile{}
	}

	if fromEnv := os.Getenv(flags.AccessKeyEnvVar); fromEnv != "" {
		profile.AccessKey = fromEnv
	}
	if fromEnv := os.Getenv(flags.SecretKeyEnvVar); fromEnv != "" {
		profile.SecretKey = fromEnv
	}
	if fromEnv := os.Getenv(flags.EndpointEnvVar); fromEnv != "" {
		profile.APIEndpoint = fromEnv
	}
	if fromEnv := os.Getenv(flags.RegistryEnvVar); fromEnv != "" {
		profile.Registry = fromEnv
	}

	if fromFlag := RecursiveFlagSearch(context, flags.AccessKeyFlag); fromFlag != "" {
		profile.AccessKey = fromFlag
	}
	if fromFlag := RecursiveFlagSearch(context, flags.SecretKeyFlag); fromFlag != "" {
		profile.SecretKey = fromFlag
	}
	if fromFlag := RecursiveFlagSearch(context, flags.NamespaceFlag); fromFlag != "" {
		profile.Namespace = fromFlag
	}
	if fromFlag := RecursiveFlagSearch(context, flags.EndpointFlag); fromFlag != "" {
		profile.APIEndpoint = fromFlag
	}
	if fromFlag := RecursiveFlagSearch(context, flags.RegistryFlag); fromFlag != "" {
		profile.Registry = fromFlag
	}

	if profile.AccessKey == "" || profile.SecretKey == "" {
		return nil, errors.Errorf(
			"Account credentials are not configured; run 'configure profile' or set %s and %s",
			flags.AccessKeyEnvVar, flags.SecretKeyEnvVar)
	}
	if profile.APIEndpoint == "" {
		profile.APIEndpoint = DefaultAPIEndpoint
	}
	if profile.Registry == "" {
		profile.Registry = DefaultRegistry
	}

	return &CommandConfig{
		Profile:     profileName,
		APIEndpoint: profile.APIEndpoint,
		Account: relay.AccountContext{
			AccessKey: profile.AccessKey,
			SecretKey: profile.SecretKey,
			Namespace: profile.Namespace,
			Registry:  profile.Registry,
		},
	}, nil
}
