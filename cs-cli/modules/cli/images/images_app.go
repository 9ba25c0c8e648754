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
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/clients/scan"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/config"
	"github.com/containersec/cs-cli/cs-cli/modules/utils"
	units "github.com/docker/go-units"
	"github.com/urfave/cli"
)

// const symbols and widths
const (
	MinWidth    = 20
	TabWidth    = 1
	Padding     = 3
	PaddingChar = ' '
	NumOfFlags  = 0
	PageSize    = 100

	// ListImageFormat describes the argument the images command accepts.
	ListImageFormat = "[REPOSITORY]"
)

var scanStatuses = []string{
	scan.ScanStatusQueued,
	scan.ScanStatusScanning,
	scan.ScanStatusCompleted,
	scan.ScanStatusFailed,
}

// ImageList lists images uploaded to the scanning service.
func ImageList(c *cli.Context) {
	rdwr, err := config.NewReadWriter()
	if err != nil {
		logrus.Fatal("Error executing 'images': ", err)
	}

	cmdConfig, err := config.NewCommandConfig(c, rdwr)
	if err != nil {
		logrus.Fatal("Error executing 'images': ", err)
	}

	scanClient := scan.NewClient(cmdConfig.APIEndpoint, cmdConfig.Account)
	if err := getImages(c, scanClient); err != nil {
		logrus.Fatal("Error executing 'images': ", err)
	}
}

type imageInfo struct {
	Repository string
	Tag        string
	Digest     string
	PushedAt   string
	Size       string
	Status     string
	Score      string
}

func getImages(c *cli.Context, scanClient scan.Client) error {
	repository := c.Args().First()

	status := c.String(flags.StatusFlag)
	if status != "" && !utils.InSlice(status, scanStatuses) {
		return fmt.Errorf("unknown scan status %q", status)
	}

	totalCount := 0

	w := tabwriter.NewWriter(os.Stdout, MinWidth, TabWidth, Padding, PaddingChar, NumOfFlags)

	err := scanClient.ListImages(context.Background(), repository, func(images []scan.ImageDetail) error {
		for _, image := range images {
			if status != "" && image.ScanStatus != status {
				continue
			}
			info := imageInfo{
				Repository: image.Repository,
				Tag:        image.Tag,
				Digest:     image.Digest,
				Status:     image.ScanStatus,
				Score:      "-",
			}
			if image.Tag == "" {
				info.Tag = "<none>"
			}
			if image.ScanStatus == scan.ScanStatusCompleted {
				info.Score = strconv.Itoa(image.RiskScore)
			}
			info.PushedAt = units.HumanDuration(time.Now().UTC().Sub(image.PushedAt)) + " ago"
			info.Size = units.HumanSizeWithPrecision(float64(image.SizeBytes), 3)
			listImagesContent(w, info, totalCount)
			totalCount++
		}
		return nil
	})
	w.Flush()
	return err
}

func listImagesContent(w *tabwriter.Writer, info imageInfo, count int) {
	if count%PageSize == 0 {
		w.Flush()
		fmt.Println()
		printImageRow(w, imageInfo{
			Repository: "REPOSITORY",
			Tag:        "TAG",
			Digest:     "DIGEST",
			PushedAt:   "PUSHED AT",
			Size:       "SIZE",
			Status:     "SCAN STATUS",
			Score:      "RISK SCORE",
		})
	}
	printImageRow(w, info)
}

func printImageRow(w io.Writer, info imageInfo) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
		info.Repository,
		info.Tag,
		info.Digest,
		info.PushedAt,
		info.Size,
		info.Status,
		info.Score,
	)
}
