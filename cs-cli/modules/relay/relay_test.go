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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testImage     = "myapp:v1.2"
	testDigest    = "sha256:4bc453b53cb3d914b45f4b250294236adba2c0e09ff6f03793949e7e39fd4cc1"
	testNamespace = "acme"
	testRegistry  = "registry.cloud.containersec.io"
)

func testAccount() AccountContext {
	return AccountContext{
		AccessKey: "access",
		SecretKey: "secret",
		Namespace: testNamespace,
		Registry:  testRegistry,
	}
}

type fakeLocalImages struct {
	exists     bool
	inspectErr error
	tagErr     error

	inspected []string
	tagged    []string
}

func (f *fakeLocalImages) ImageExists(name string) (bool, error) {
	f.inspected = append(f.inspected, name)
	return f.exists, f.inspectErr
}

func (f *fakeLocalImages) TagImage(image, repository, tag string) error {
	f.tagged = append(f.tagged, repository+":"+tag)
	return f.tagErr
}

type fakeTokenSource struct {
	auth *RegistryAuth
	err  error

	calls int
}

func (f *fakeTokenSource) RegistryAuth(ctx context.Context, account AccountContext) (*RegistryAuth, error) {
	f.calls++
	return f.auth, f.err
}

type fakePusher struct {
	events []LayerEvent
	err    error

	calls int
}

func (f *fakePusher) PushImage(ctx context.Context, repository, tag, registry string, auth RegistryAuth) (<-chan LayerEvent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(chan LayerEvent, len(f.events))
	for _, event := range f.events {
		out <- event
	}
	close(out)
	return out, nil
}

func successEvents() []LayerEvent {
	return []LayerEvent{
		{LayerID: "5f70bf18a086", BytesSent: 512, TotalBytes: 1024},
		{LayerID: "5f70bf18a086", Done: true},
		{LayerID: "e5c3f8c317dc", Done: true},
		{Done: true, Digest: testDigest},
	}
}

func newTestRelay(local *fakeLocalImages, pusher *fakePusher, tokens *fakeTokenSource) *Relay {
	return New(local, pusher, tokens)
}

func TestPush(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{events: successEvents()}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user", Password: "pass", Registry: testRegistry}}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.NoError(t, err, "Error pushing image")
	assert.True(t, result.Success, "Expected push to succeed")
	assert.Equal(t, testDigest, result.Digest, "Expected manifest digest")
	assert.Equal(t, testRegistry+"/"+testNamespace+"/myapp:v1.2", result.Coordinate.String(), "Expected derived coordinate")
	assert.Equal(t, []string{testRegistry + "/" + testNamespace + "/myapp:v1.2"}, local.tagged, "Expected local tag to match coordinate")
}

func TestPushRemoteRename(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{events: successEvents()}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{
		Image:            testImage,
		RemoteRepository: "renamed",
		RemoteTag:        "stable",
	})
	assert.NoError(t, err, "Error pushing image")
	assert.Equal(t, testRegistry+"/"+testNamespace+"/renamed:stable", result.Coordinate.String(), "Expected renamed coordinate")
}

func TestPushMalformedReference(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: "MyApp:latest"})
	assert.Error(t, err, "Expected error for malformed reference")
	assert.IsType(t, &CoordinateError{}, err, "Expected CoordinateError")
	assert.False(t, result.Success)
	assert.Empty(t, local.inspected, "Local store should not be queried for a malformed reference")
}

func TestPushImageMissing(t *testing.T) {
	local := &fakeLocalImages{exists: false}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error for missing image")
	assert.IsType(t, &ImageNotFoundError{}, err, "Expected ImageNotFoundError")
	assert.False(t, result.Success)
	assert.Equal(t, 0, tokens.calls, "No credentials should be exchanged before the image is found")
	assert.Equal(t, 0, pusher.calls, "No remote contact for a missing image")
}

func TestPushInspectFailure(t *testing.T) {
	local := &fakeLocalImages{inspectErr: errors.New("cannot connect to the daemon")}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{}

	_, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error when the local store cannot be queried")
	assert.IsType(t, &ImageNotFoundError{}, err, "Expected ImageNotFoundError")
	assert.Equal(t, 0, tokens.calls, "No credentials should be exchanged before the image is found")
}

func TestPushAuthenticationFailure(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{err: errors.New("invalid keys")}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error for rejected credentials")
	assert.IsType(t, &AuthenticationError{}, err, "Expected AuthenticationError")
	assert.False(t, result.Success)
	assert.Equal(t, 0, pusher.calls, "No layer transfer after rejected credentials")
	assert.Empty(t, local.tagged, "No tagging after rejected credentials")
}

func TestPushMissingNamespace(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	account := testAccount()
	account.Namespace = ""

	_, err := newTestRelay(local, pusher, tokens).Push(context.Background(), account, PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error when no namespace is configured")
	assert.IsType(t, &CoordinateError{}, err, "Expected CoordinateError")
	assert.Equal(t, 0, pusher.calls, "No push without a coordinate")
}

func TestPushTagFailure(t *testing.T) {
	local := &fakeLocalImages{exists: true, tagErr: errors.New("no such image")}
	pusher := &fakePusher{}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	_, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error when tagging fails")
	assert.IsType(t, &TransferError{}, err, "Expected TransferError")
	assert.Equal(t, 0, pusher.calls, "No push after a tag failure")
}

func TestPushLayerFailure(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{events: []LayerEvent{
		{LayerID: "5f70bf18a086", BytesSent: 512, TotalBytes: 1024},
		{LayerID: "5f70bf18a086", Err: errors.New("blob upload invalid")},
		{LayerID: "e5c3f8c317dc", Done: true},
	}}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	result, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error for failed layer")
	transferErr, ok := err.(*TransferError)
	if assert.True(t, ok, "Expected TransferError") {
		assert.Equal(t, "5f70bf18a086", transferErr.LayerID, "Expected the failed layer to be identified")
	}
	assert.Equal(t, "5f70bf18a086", result.FailedLayer)
	assert.False(t, result.Success)
}

func TestPushCancelled(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{events: []LayerEvent{
		{LayerID: "5f70bf18a086", Err: errors.New("context canceled")},
	}}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestRelay(local, pusher, tokens).Push(ctx, testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error for cancelled upload")
	assert.IsType(t, &CancelledError{}, err, "Cancellation takes precedence over the layer failure")
	assert.False(t, result.Success)
}

func TestPushNoDigest(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	pusher := &fakePusher{events: []LayerEvent{
		{LayerID: "5f70bf18a086", Done: true},
	}}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}

	_, err := newTestRelay(local, pusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.Error(t, err, "Expected error when the stream ends without a digest")
	assert.IsType(t, &TransferError{}, err, "Expected TransferError")
}

func TestPushIdempotent(t *testing.T) {
	local := &fakeLocalImages{exists: true}
	tokens := &fakeTokenSource{auth: &RegistryAuth{Username: "user"}}
	uploader := newTestRelay(local, &fakePusher{events: successEvents()}, tokens)

	first, err := uploader.Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.NoError(t, err, "Error pushing image")

	// Layers already present remotely still produce the same digest.
	rePusher := &fakePusher{events: []LayerEvent{
		{LayerID: "5f70bf18a086", Done: true},
		{LayerID: "e5c3f8c317dc", Done: true},
		{Done: true, Digest: testDigest},
	}}
	second, err := newTestRelay(local, rePusher, tokens).Push(context.Background(), testAccount(), PushRequest{Image: testImage})
	assert.NoError(t, err, "Error re-pushing image")
	assert.Equal(t, first.Digest, second.Digest, "Re-pushing an unchanged image yields the same digest")
	assert.Equal(t, first.Coordinate, second.Coordinate)
}
