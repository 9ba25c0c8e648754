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

package relay

import (
	"regexp"
	"strings"
)

// ReferenceFormat documents the accepted image reference syntax.
const ReferenceFormat = "REPOSITORY[:TAG|@DIGEST]"

const defaultTag = "latest"

var referenceRegexp = regexp.MustCompile(
	`^([0-9a-z][0-9a-z\-_./]*?)` + // repository
		`(?::([0-9A-Za-z_][0-9A-Za-z_.\-]*))?` + // tag (optional)
		`(?:@(sha256:[0-9a-f]{64}))?$`) // digest (optional)

// Reference is a parsed local image reference.
type Reference struct {
	Repository string
	Tag        string
	Digest     string
}

// ParseReference splits an image reference of the form REPOSITORY[:TAG|@DIGEST].
// A missing tag defaults to "latest" unless a digest is given.
func ParseReference(image string) (Reference, error) {
	if image == "" {
		return Reference{}, &CoordinateError{Reference: image, Reason: "reference is empty"}
	}

	matches := referenceRegexp.FindStringSubmatch(image)
	if len(matches) == 0 {
		return Reference{}, &CoordinateError{
			Reference: image,
			Reason:    "please specify the image in the format " + ReferenceFormat,
		}
	}

	ref := Reference{
		Repository: matches[1],
		Tag:        matches[2],
		Digest:     matches[3],
	}
	if strings.HasSuffix(ref.Repository, "/") {
		return Reference{}, &CoordinateError{Reference: image, Reason: "repository must not end with '/'"}
	}
	if ref.Tag == "" && ref.Digest == "" {
		ref.Tag = defaultTag
	}
	return ref, nil
}

// String reassembles the reference.
func (r Reference) String() string {
	s := r.Repository
	if r.Tag != "" {
		s += ":" + r.Tag
	}
	if r.Digest != "" {
		s += "@" + r.Digest
	}
	return s
}

// Coordinate is the fully qualified destination a push targets. It is derived
// per upload call and never reused across accounts.
type Coordinate struct {
	Registry   string
	Namespace  string
	Repository string
	Tag        string
}

// Repo returns the repository part of the coordinate, including the registry
// host and the account namespace.
func (c Coordinate) Repo() string {
	return c.Registry + "/" + c.Namespace + "/" + c.Repository
}

func (c Coordinate) String() string {
	return c.Repo() + ":" + c.Tag
}

// DeriveCoordinate computes the registry coordinate for a reference scoped to
// the given account. remoteRepo and remoteTag rename the image on upload when
// non-empty; otherwise the local repository name (minus any registry prefix)
// and tag carry over.
func DeriveCoordinate(ref Reference, account AccountContext, remoteRepo, remoteTag string) (Coordinate, error) {
	if account.Registry == "" {
		return Coordinate{}, &CoordinateError{Reference: ref.String(), Reason: "no registry host configured for account"}
	}
	if account.Namespace == "" {
		return Coordinate{}, &CoordinateError{Reference: ref.String(), Reason: "no namespace configured for account"}
	}

	repository := remoteRepo
	if repository == "" {
		// Drop any leading registry or path segments so that a local tag like
		// docker.io/library/myapp lands under the account as just "myapp".
		parts := strings.Split(ref.Repository, "/")
		repository = parts[len(parts)-1]
	}

	tag := remoteTag
	if tag == "" {
		tag = ref.Tag
	}
	if tag == "" {
		tag = defaultTag
	}

	return Coordinate{
		Registry:   account.Registry,
		Namespace:  account.Namespace,
		Repository: repository,
		Tag:        tag,
	}, nil
}
