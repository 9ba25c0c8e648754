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
	"flag"
	"os"
	"testing"

	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

type mockReadWriter struct {
	profile   *Profile
	err       error
	requested string
}

func (rdwr *mockReadWriter) Get(profileName string) (*Profile, error) {
	rdwr.requested = profileName
	return rdwr.profile, rdwr.err
}

func (rdwr *mockReadWriter) SaveProfile(name string, profile *Profile) error { return nil }

func (rdwr *mockReadWriter) SetDefaultProfile(name string) error { return nil }

func newMockReadWriter() *mockReadWriter {
	return &mockReadWriter{profile: testProfile()}
}

func clearEnv() {
	os.Unsetenv(flags.AccessKeyEnvVar)
	os.Unsetenv(flags.SecretKeyEnvVar)
	os.Unsetenv(flags.EndpointEnvVar)
	os.Unsetenv(flags.RegistryEnvVar)
	os.Unsetenv(flags.ProfileEnvVar)
}

func testContext(args ...string) *cli.Context {
	flagSet := flag.NewFlagSet("cs-cli", 0)
	flagSet.String(flags.AccessKeyFlag, "", "")
	flagSet.String(flags.SecretKeyFlag, "", "")
	flagSet.String(flags.NamespaceFlag, "", "")
	flagSet.String(flags.EndpointFlag, "", "")
	flagSet.String(flags.RegistryFlag, "", "")
	flagSet.String(flags.ProfileFlag, "", "")
	flagSet.Parse(args)
	return cli.NewContext(nil, flagSet, nil)
}

func TestNewCommandConfigFromProfile(t *testing.T) {
	clearEnv()

	cmdConfig, err := NewCommandConfig(testContext(), newMockReadWriter())
	assert.NoError(t, err, "Error resolving config")
	assert.Equal(t, testAccessKey, cmdConfig.Account.AccessKey)
	assert.Equal(t, testSecretKey, cmdConfig.Account.SecretKey)
	assert.Equal(t, testNamespace, cmdConfig.Account.Namespace)
	assert.Equal(t, DefaultAPIEndpoint, cmdConfig.APIEndpoint, "Endpoint should default")
	assert.Equal(t, DefaultRegistry, cmdConfig.Account.Registry, "Registry should default")
}

func TestNewCommandConfigNamedProfile(t *testing.T) {
	clearEnv()
	rdwr := newMockReadWriter()

	_, err := NewCommandConfig(testContext("--"+flags.ProfileFlag, "staging"), rdwr)
	assert.NoError(t, err, "Error resolving config")
	assert.Equal(t, "staging", rdwr.requested, "Expected the named profile to be requested")
}

func TestNewCommandConfigProfileFromEnv(t *testing.T) {
	clearEnv()
	defer clearEnv()
	os.Setenv(flags.ProfileEnvVar, "staging")
	rdwr := newMockReadWriter()

	_, err := NewCommandConfig(testContext(), rdwr)
	assert.NoError(t, err, "Error resolving config")
	assert.Equal(t, "staging", rdwr.requested)
}

func TestNewCommandConfigEnvOverridesProfile(t *testing.T) {
	clearEnv()
	defer clearEnv()
	os.Setenv(flags.AccessKeyEnvVar, "env-access")
	os.Setenv(flags.SecretKeyEnvVar, "env-secret")
	os.Setenv(flags.EndpointEnvVar, "https://staging.containersec.io")

	cmdConfig, err := NewCommandConfig(testContext(), newMockReadWriter())
	assert.NoError(t, err, "Error resolving config")
	assert.Equal(t, "env-access", cmdConfig.Account.AccessKey)
	assert.Equal(t, "env-secret", cmdConfig.Account.SecretKey)
	assert.Equal(t, "https://staging.containersec.io", cmdConfig.APIEndpoint)
}

func TestNewCommandConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv()
	defer clearEnv()
	os.Setenv(flags.AccessKeyEnvVar, "env-access")
	os.Setenv(flags.SecretKeyEnvVar, "env-secret")

	cmdConfig, err := NewCommandConfig(testContext(
		"--"+flags.AccessKeyFlag, "flag-access",
		"--"+flags.RegistryFlag, "registry.staging.containersec.io",
	), newMockReadWriter())
	assert.NoError(t, err, "Error resolving config")
	assert.Equal(t, "flag-access", cmdConfig.Account.AccessKey, "Flags win over environment variables")
	assert.Equal(t, "env-secret", cmdConfig.Account.SecretKey)
	assert.Equal(t, "registry.staging.containersec.io", cmdConfig.Account.Registry)
}

func TestNewCommandConfigNoConfigFile(t *testing.T) {
	clearEnv()
	rdwr := &mockReadWriter{err: errors.New("no config")}

	_, err := NewCommandConfig(testContext(), rdwr)
	assert.Error(t, err, "Expected error without config or environment credentials")
}

func TestNewCommandConfigEnvOnly(t *testing.T) {
	clearEnv()
	defer clearEnv()
	os.Setenv(flags.AccessKeyEnvVar, "env-access")
	os.Setenv(flags.SecretKeyEnvVar, "env-secret")
	rdwr := &mockReadWriter{err: errors.New("no config")}

	cmdConfig, err := NewCommandConfig(testContext(), rdwr)
	assert.NoError(t, err, "A config file is optional when the environment carries credentials")
	assert.Equal(t, "env-access", cmdConfig.Account.AccessKey)
}

func TestNewCommandConfigMissingCredentials(t *testing.T) {
	clearEnv()
	rdwr := &mockReadWriter{profile: &Profile{Namespace: testNamespace}}

	_, err := NewCommandConfig(testContext(), rdwr)
	assert.Error(t, err, "Expected error when the profile holds no credentials")
}
