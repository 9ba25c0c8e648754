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

// Package version holds the cs-cli version information.
package version

import "fmt"

// AppName is the name of the binary.
const AppName = "cs-cli"

// Version is the semantic version of this build.
const Version = "1.3.0"

// GitShortHash is set at build time via ldflags.
var GitShortHash string

// String returns the human readable version string.
func String() string {
	if GitShortHash == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitShortHash)
}
