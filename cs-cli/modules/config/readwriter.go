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
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	credentialsFileName = "credentials"
	configFileMode      = os.FileMode(0600) // Owner=read/write, Other=None
)

// ReadWriter interface has methods to read and write cs-cli profiles to and
// from the credentials file.
type ReadWriter interface {
	Get(profileName string) (*Profile, error)
	SaveProfile(name string, profile *Profile) error
	SetDefaultProfile(name string) error
}

// YAMLReadWriter implements the ReadWriter interface. Sample credentials file:
// version: v1
// default: default
// cs_profiles:
//   default:
//     access_key: 4f86afe0
//     secret_key: 24f2b5b2
//     namespace: acme
type YAMLReadWriter struct {
	Destination *Destination
}

// NewReadWriter creates a new YAMLReadWriter for the default destination.
func NewReadWriter() (*YAMLReadWriter, error) {
	dest, err := NewDefaultDestination()
	if err != nil {
		return nil, err
	}

	return &YAMLReadWriter{Destination: dest}, nil
}

// Get returns the named profile, or the default profile when name is empty.
// When the credentials file does not exist, the legacy INI config is read
// instead.
func (rdwr *YAMLReadWriter) Get(profileName string) (*Profile, error) {
	config, err := rdwr.load()
	if os.IsNotExist(errors.Cause(err)) {
		// fall back to the legacy single-profile INI config
		iniReadWriter, iniErr := NewINIReadWriter(rdwr.Destination)
		if iniErr != nil {
			return nil, err
		}
		profile, iniErr := iniReadWriter.GetProfile()
		if iniErr != nil || profile == nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	if profileName == "" {
		profileName = config.Default
	}
	profile, ok := config.Profiles[profileName]
	if !ok {
		return nil, errors.Errorf("profile %q is not configured; run 'configure profile' first", profileName)
	}
	return &profile, nil
}

// SaveProfile adds or replaces the named profile. The first profile saved
// becomes the default.
func (rdwr *YAMLReadWriter) SaveProfile(name string, profile *Profile) error {
	config, err := rdwr.load()
	if err != nil {
		config = &ProfileConfig{Profiles: map[string]Profile{}}
	}
	if config.Profiles == nil {
		config.Profiles = map[string]Profile{}
	}

	config.Profiles[name] = *profile
	if config.Default == "" {
		config.Default = name
	}
	return rdwr.save(config)
}

// SetDefaultProfile marks an existing profile as the default.
func (rdwr *YAMLReadWriter) SetDefaultProfile(name string) error {
	config, err := rdwr.load()
	if err != nil {
		return err
	}
	if _, ok := config.Profiles[name]; !ok {
		return errors.Errorf("profile %q is not configured", name)
	}
	config.Default = name
	return rdwr.save(config)
}

func (rdwr *YAMLReadWriter) load() (*ProfileConfig, error) {
	path := credentialsPath(rdwr.Destination)
	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read credentials file")
	}

	config := new(ProfileConfig)
	if err := yaml.Unmarshal(dat, config); err != nil {
		return nil, errors.Wrap(err, "unable to parse credentials file")
	}
	return config, nil
}

func (rdwr *YAMLReadWriter) save(config *ProfileConfig) error {
	destMode := rdwr.Destination.Mode
	if err := os.MkdirAll(rdwr.Destination.Path, *destMode); err != nil {
		return err
	}

	config.Version = configVersion
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "unable to serialize credentials")
	}
	return ioutil.WriteFile(credentialsPath(rdwr.Destination), data, configFileMode)
}

func credentialsPath(dest *Destination) string {
	return filepath.Join(dest.Path, credentialsFileName)
}
