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

const (
	configVersion = "v1"

	// DefaultAPIEndpoint is the public endpoint of the scanning service.
	DefaultAPIEndpoint = "https://cloud.containersec.io"
	// DefaultRegistry is the ingestion registry images are uploaded to.
	DefaultRegistry = "registry.cloud.containersec.io"
)

// Profile is a single named set of account credentials and targets.
type Profile struct {
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	Namespace   string `yaml:"namespace,omitempty"`
	APIEndpoint string `yaml:"api_endpoint,omitempty"`
	Registry    string `yaml:"registry,omitempty"`
}

// ProfileConfig is the top level struct representing the credentials file.
type ProfileConfig struct {
	Version  string             `yaml:"version"`
	Default  string             `yaml:"default"`
	Profiles map[string]Profile `yaml:"cs_profiles"`
}
