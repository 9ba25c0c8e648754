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

// Package relay uploads local container images to the scanning service's
// ingestion registry. It bridges a caller-supplied image reference to an
// external push capability, targeting the account-scoped registry coordinate,
// and normalizes the outcome into an UploadResult.
package relay

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/pkg/errors"
)

// AccountContext carries the credentials and target info needed to derive a
// registry coordinate and authenticate a push. The relay never mutates it.
type AccountContext struct {
	AccessKey string
	SecretKey string
	Namespace string
	Registry  string
}

// RegistryAuth is a set of short-lived registry credentials obtained by
// exchanging the account's API keys.
type RegistryAuth struct {
	Username  string
	Password  string
	Registry  string
	ExpiresAt time.Time
}

// LayerEvent is one element of the finite event sequence produced by the
// external push capability. A terminal event carries the manifest digest.
type LayerEvent struct {
	LayerID    string
	BytesSent  int64
	TotalBytes int64
	Done       bool
	Digest     string
	Err        error
}

// LocalImages is the subset of the container runtime the relay needs to
// establish its preconditions and to apply the derived coordinate.
type LocalImages interface {
	ImageExists(name string) (bool, error)
	TagImage(image, repository, tag string) error
}

// Pusher is the external push capability the relay delegates layer transfer
// to. The returned channel is closed once the push completes or fails; the
// sequence is finite and not restartable.
type Pusher interface {
	PushImage(ctx context.Context, repository, tag, registry string, auth RegistryAuth) (<-chan LayerEvent, error)
}

// TokenSource exchanges account credentials for registry credentials.
type TokenSource interface {
	RegistryAuth(ctx context.Context, account AccountContext) (*RegistryAuth, error)
}

// PushRequest names the local image to upload and optionally renames it on
// the remote side.
type PushRequest struct {
	Image            string
	RemoteRepository string
	RemoteTag        string
}

// UploadResult is the immutable outcome of one upload call.
type UploadResult struct {
	Success     bool
	Digest      string
	Coordinate  Coordinate
	FailedLayer string
	Err         error
}

// Relay bridges local images to the scanning service's ingestion registry.
// It holds no state between calls.
type Relay struct {
	local  LocalImages
	pusher Pusher
	tokens TokenSource
}

// New creates a Relay from its collaborators.
func New(local LocalImages, pusher Pusher, tokens TokenSource) *Relay {
	return &Relay{
		local:  local,
		pusher: pusher,
		tokens: tokens,
	}
}

// Push uploads the requested image to the account's registry coordinate and
// reports the outcome. Every failure is one of AuthenticationError,
// ImageNotFoundError, CoordinateError, TransferError or CancelledError; the
// returned UploadResult carries the same error along with the failed layer,
// if any. Cancelling ctx aborts the in-flight transfer.
func (r *Relay) Push(ctx context.Context, account AccountContext, req PushRequest) (*UploadResult, error) {
	ref, err := ParseReference(req.Image)
	if err != nil {
		return failure(Coordinate{}, "", err)
	}

	found, err := r.local.ImageExists(req.Image)
	if err != nil {
		return failure(Coordinate{}, "", &ImageNotFoundError{Reference: req.Image, Cause: err})
	}
	if !found {
		return failure(Coordinate{}, "", &ImageNotFoundError{Reference: req.Image})
	}

	auth, err := r.tokens.RegistryAuth(ctx, account)
	if err != nil {
		if _, ok := err.(*AuthenticationError); !ok {
			err = &AuthenticationError{Cause: err}
		}
		return failure(Coordinate{}, "", err)
	}

	coord, err := DeriveCoordinate(ref, account, req.RemoteRepository, req.RemoteTag)
	if err != nil {
		return failure(Coordinate{}, "", err)
	}

	if err := r.local.TagImage(req.Image, coord.Repo(), coord.Tag); err != nil {
		return failure(coord, "", &TransferError{Cause: errors.Wrap(err, "unable to tag image")})
	}

	log.WithFields(log.Fields{
		"image":      req.Image,
		"coordinate": coord.String(),
	}).Info("Uploading image")

	events, err := r.pusher.PushImage(ctx, coord.Repo(), coord.Tag, coord.Registry, *auth)
	if err != nil {
		return failure(coord, "", &TransferError{Cause: err})
	}

	digest, failed := drain(events)

	if err := ctx.Err(); err != nil {
		return failure(coord, failedLayer(failed), &CancelledError{Cause: err})
	}
	if failed != nil {
		return failure(coord, failed.LayerID, failed)
	}
	if digest == "" {
		return failure(coord, "", &TransferError{Cause: errors.New("push stream ended without a digest")})
	}

	log.WithFields(log.Fields{
		"coordinate": coord.String(),
		"digest":     digest,
	}).Info("Image uploaded")

	return &UploadResult{
		Success:    true,
		Digest:     digest,
		Coordinate: coord,
	}, nil
}

// drain consumes the event stream to completion, remembering the manifest
// digest and the first layer failure. The stream is finite, so draining past
// the first error costs only the remaining events and keeps the producer from
// blocking on an abandoned channel.
func drain(events <-chan LayerEvent) (digest string, failed *TransferError) {
	for event := range events {
		if event.Err != nil {
			if failed == nil {
				failed = &TransferError{LayerID: event.LayerID, Cause: event.Err}
			}
			continue
		}
		if event.Digest != "" {
			digest = event.Digest
		}
		if event.LayerID != "" {
			log.WithFields(log.Fields{
				"layer": event.LayerID,
				"sent":  event.BytesSent,
				"total": event.TotalBytes,
				"done":  event.Done,
			}).Debug("Layer progress")
		}
	}
	return digest, failed
}

func failedLayer(failed *TransferError) string {
	if failed == nil {
		return ""
	}
	return failed.LayerID
}

func failure(coord Coordinate, layer string, err error) (*UploadResult, error) {
	return &UploadResult{
		Coordinate:  coord,
		FailedLayer: layer,
		Err:         err,
	}, err
}
