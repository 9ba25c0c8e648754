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
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/go-ini/ini"
)

const (
	iniConfigFileName = "config"
	iniSectionKey     = "cs"
)

// iniProfile maps the legacy single-profile config file. Sample:
// [cs]
// access_key = 4f86afe0
// secret_key = 24f2b5b2
// namespace = acme
// api_endpoint = https://cloud.containersec.io
// registry = registry.cloud.containersec.io
type iniProfile struct {
	AccessKey   string `ini:"access_key"`
	SecretKey   string `ini:"secret_key"`
	Namespace   string `ini:"namespace"`
	APIEndpoint string `ini:"api_endpoint"`
	Registry    string `ini:"registry"`
}

// INIReadWriter reads the legacy INI config file. It is read-only; saving
// always writes the YAML credentials file.
type INIReadWriter struct {
	destination *Destination
	cfg         *ini.File
}

// NewINIReadWriter creates a new INIReadWriter for the destination.
func NewINIReadWriter(dest *Destination) (*INIReadWriter, error) {
	iniCfg, err := newINIConfig(dest)
	if err != nil {
		return nil, err
	}

	return &INIReadWriter{destination: dest, cfg: iniCfg}, nil
}

// GetProfile maps the legacy config to a Profile. Returns nil when the file
// holds no credentials.
func (rdwr *INIReadWriter) GetProfile() (*Profile, error) {
	to := new(iniProfile)
	if err := rdwr.cfg.Section(iniSectionKey).MapTo(to); err != nil {
		return nil, err
	}

	if to.AccessKey == "" && to.SecretKey == "" {
		return nil, nil
	}
	return &Profile{
		AccessKey:   to.AccessKey,
		SecretKey:   to.SecretKey,
		Namespace:   to.Namespace,
		APIEndpoint: to.APIEndpoint,
		Registry:    to.Registry,
	}, nil
}

func newINIConfig(dest *Destination) (*ini.File, error) {
	iniCfg := ini.Empty()
	filename := filepath.Join(dest.Path, iniConfigFileName)
	logrus.Debugf("using config file: %s", filename)
	if _, err := os.Stat(filename); err != nil {
		logrus.Debugf("no legacy config file found")
	} else {
		if err = iniCfg.Append(filename); err != nil {
			return nil, err
		}
	}

	return iniCfg, nil
}
