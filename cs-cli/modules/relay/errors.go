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

import "fmt"

// AuthenticationError indicates that the account credentials were rejected
// while exchanging them for registry credentials. No layer transfer is
// attempted once it is raised.
type AuthenticationError struct {
	Cause error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Cause)
}

func (e *AuthenticationError) Unwrap() error { return e.Cause }

// ImageNotFoundError indicates that the referenced image is not present in
// the local image store, or that the store could not be queried.
type ImageNotFoundError struct {
	Reference string
	Cause     error
}

func (e *ImageNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image %q not found in local store: %v", e.Reference, e.Cause)
	}
	return fmt.Sprintf("image %q not found in local store", e.Reference)
}

func (e *ImageNotFoundError) Unwrap() error { return e.Cause }

// CoordinateError indicates that the image reference is malformed or that no
// registry coordinate can be derived from it for the given account.
type CoordinateError struct {
	Reference string
	Reason    string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid image reference %q: %s", e.Reference, e.Reason)
}

// TransferError indicates that the delegated push failed. LayerID names the
// first layer that reported a failure; it is empty when the push failed
// before any layer was identified.
type TransferError struct {
	LayerID string
	Cause   error
}

func (e *TransferError) Error() string {
	if e.LayerID != "" {
		return fmt.Sprintf("layer %s failed to upload: %v", e.LayerID, e.Cause)
	}
	return fmt.Sprintf("upload failed: %v", e.Cause)
}

func (e *TransferError) Unwrap() error { return e.Cause }

// CancelledError indicates that the caller cancelled the upload. The
// in-flight transfer is aborted; nothing is retried.
type CancelledError struct {
	Cause error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("upload cancelled: %v", e.Cause)
}

func (e *CancelledError) Unwrap() error { return e.Cause }
