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

package images

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/containersec/cs-cli/cs-cli/modules/clients/scan"
	mock_scan "github.com/containersec/cs-cli/cs-cli/modules/clients/scan/mock"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

const testDigest = "sha256:4bc453b53cb3d914b45f4b250294236adba2c0e09ff6f03793949e7e39fd4cc1"

func testContext(args ...string) *cli.Context {
	flagSet := flag.NewFlagSet("cs-cli-images", 0)
	flagSet.String(flags.StatusFlag, "", "")
	flagSet.Parse(args)
	return cli.NewContext(nil, flagSet, nil)
}

func testImages() []scan.ImageDetail {
	return []scan.ImageDetail{
		{
			Repository: "myapp",
			Tag:        "v1.2",
			Digest:     testDigest,
			SizeBytes:  1024 * 1024,
			PushedAt:   time.Now().Add(-time.Hour),
			ScanStatus: scan.ScanStatusCompleted,
			RiskScore:  7,
		},
		{
			Repository: "myapp",
			Tag:        "v1.1",
			PushedAt:   time.Now().Add(-24 * time.Hour),
			ScanStatus: scan.ScanStatusQueued,
		},
	}
}

func TestImageList(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockScan := mock_scan.NewMockClient(ctrl)

	mockScan.EXPECT().ListImages(gomock.Any(), "", gomock.Any()).DoAndReturn(
		func(ctx context.Context, repository string, processFn scan.ProcessImageDetails) error {
			return processFn(testImages())
		})

	err := getImages(testContext(), mockScan)
	assert.NoError(t, err, "Error listing images")
}

func TestImageListWithRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockScan := mock_scan.NewMockClient(ctrl)

	mockScan.EXPECT().ListImages(gomock.Any(), "myapp", gomock.Any()).DoAndReturn(
		func(ctx context.Context, repository string, processFn scan.ProcessImageDetails) error {
			return processFn(testImages())
		})

	err := getImages(testContext("myapp"), mockScan)
	assert.NoError(t, err, "Error listing images")
}

func TestImageListStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockScan := mock_scan.NewMockClient(ctrl)

	mockScan.EXPECT().ListImages(gomock.Any(), "", gomock.Any()).DoAndReturn(
		func(ctx context.Context, repository string, processFn scan.ProcessImageDetails) error {
			return processFn(testImages())
		})

	err := getImages(testContext("--"+flags.StatusFlag, scan.ScanStatusQueued), mockScan)
	assert.NoError(t, err, "Error listing images")
}

func TestImageListUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockScan := mock_scan.NewMockClient(ctrl)

	err := getImages(testContext("--"+flags.StatusFlag, "pending"), mockScan)
	assert.Error(t, err, "Expected error for unknown scan status")
}
