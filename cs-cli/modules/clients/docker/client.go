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

package docker

import (
	"context"
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/clients/docker/dockeriface"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/fsouza/go-dockerclient"
	"github.com/pkg/errors"
)

//go:generate mockgen.sh github.com/containersec/cs-cli/cs-cli/modules/clients/docker Client mock/$GOFILE
//go:generate mockgen.sh github.com/containersec/cs-cli/cs-cli/modules/clients/docker/dockeriface DockerAPI dockeriface/mock/dockeriface_mock.go

const (
	// Push progress reporting with an aux digest record needs at least 1.24.
	DockerVersion_1_24 = "1.24"
)

// Client is the container-runtime binding used by the relay. It implements
// relay.LocalImages and relay.Pusher on top of
// github.com/fsouza/go-dockerclient.
type Client interface {
	ImageExists(name string) (bool, error)
	TagImage(image, repository, tag string) error
	PushImage(ctx context.Context, repository, tag, registry string, auth relay.RegistryAuth) (<-chan relay.LayerEvent, error)
}

type dockerClient struct {
	client dockeriface.DockerAPI
}

// NewClient creates a new docker client from the environment.
func NewClient() (Client, error) {
	client, err := docker.NewVersionedClientFromEnv(DockerVersion_1_24)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docker client")
	}
	return newClient(client), nil
}

func newClient(client dockeriface.DockerAPI) Client {
	return &dockerClient{
		client: client,
	}
}

// ImageExists reports whether the image is present in the local store.
func (c *dockerClient) ImageExists(name string) (bool, error) {
	_, err := c.client.InspectImage(name)
	if err == docker.ErrNoSuchImage {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "unable to inspect image")
	}
	return true, nil
}

// TagImage tags repository:tag onto the local image.
func (c *dockerClient) TagImage(sourceImage, repository, tag string) error {
	log.WithFields(log.Fields{
		"source-image": sourceImage,
		"repository":   repository,
		"tag":          tag,
	}).Info("Tagging image")

	opts := docker.TagImageOptions{
		Repo: repository,
		Tag:  tag,
	}

	if err := c.client.TagImage(sourceImage, opts); err != nil {
		return errors.Wrap(err, "unable to tag image")
	}
	log.Info("Image tagged")
	return nil
}

// PushImage starts the push and returns the layer event stream. The channel
// is closed once the push completes or fails; the caller must drain it.
// Cancelling ctx aborts the push.
func (c *dockerClient) PushImage(ctx context.Context, repository, tag, registry string, auth relay.RegistryAuth) (<-chan relay.LayerEvent, error) {
	log.WithFields(log.Fields{
		"repository": repository,
		"tag":        tag,
	}).Info("Pushing image")

	pr, pw := io.Pipe()
	opts := docker.PushImageOptions{
		Name:          repository,
		Tag:           tag,
		Registry:      registry,
		OutputStream:  pw,
		RawJSONStream: true,
		Context:       ctx,
	}
	authConf := docker.AuthConfiguration{
		Username:      auth.Username,
		Password:      auth.Password,
		ServerAddress: auth.Registry,
	}

	pushErr := make(chan error, 1)
	go func() {
		err := c.client.PushImage(opts, authConf)
		pushErr <- err
		pw.CloseWithError(err)
	}()

	events := make(chan relay.LayerEvent)
	go func() {
		defer close(events)
		sawError := false
		decoder := json.NewDecoder(pr)
		for {
			var msg jsonmessage.JSONMessage
			if err := decoder.Decode(&msg); err != nil {
				break
			}
			event, ok := layerEvent(msg)
			if !ok {
				continue
			}
			if event.Err != nil {
				sawError = true
			}
			events <- event
		}
		// Surface a push failure the stream itself never reported, e.g. a
		// transport error before the daemon produced any output.
		if err := <-pushErr; err != nil && !sawError {
			events <- relay.LayerEvent{Err: errors.Wrap(err, "unable to push image")}
		}
	}()

	return events, nil
}

// pushAux is the terminal record the daemon emits once the manifest is
// written.
type pushAux struct {
	Tag    string `json:"Tag"`
	Digest string `json:"Digest"`
	Size   int64  `json:"Size"`
}

// layerEvent translates one raw progress message into a LayerEvent. Messages
// that carry neither progress, completion, an error, nor the digest are
// dropped.
func layerEvent(msg jsonmessage.JSONMessage) (relay.LayerEvent, bool) {
	if msg.Error != nil {
		return relay.LayerEvent{
			LayerID: msg.ID,
			Err:     errors.New(msg.Error.Message),
		}, true
	}

	if msg.Aux != nil {
		var aux pushAux
		if err := json.Unmarshal(*msg.Aux, &aux); err == nil && aux.Digest != "" {
			return relay.LayerEvent{
				Done:   true,
				Digest: aux.Digest,
			}, true
		}
		return relay.LayerEvent{}, false
	}

	switch msg.Status {
	case "Pushed", "Layer already exists":
		if msg.ID == "" {
			return relay.LayerEvent{}, false
		}
		return relay.LayerEvent{
			LayerID: msg.ID,
			Done:    true,
		}, true
	case "Pushing":
		if msg.ID == "" || msg.Progress == nil {
			return relay.LayerEvent{}, false
		}
		return relay.LayerEvent{
			LayerID:    msg.ID,
			BytesSent:  msg.Progress.Current,
			TotalBytes: msg.Progress.Total,
		}, true
	}
	return relay.LayerEvent{}, false
}
