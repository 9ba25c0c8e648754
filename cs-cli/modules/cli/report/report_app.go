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

package report

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/clients/scan"
	"github.com/containersec/cs-cli/cs-cli/modules/commands/flags"
	"github.com/containersec/cs-cli/cs-cli/modules/config"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/containersec/cs-cli/cs-cli/modules/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// ReportImageFormat describes the argument the report command accepts.
const ReportImageFormat = "IMAGE|DIGEST"

const pollInterval = 5 * time.Second

// GetReport fetches (and optionally waits for) the scan report of an
// uploaded image.
func GetReport(c *cli.Context) {
	rdwr, err := config.NewReadWriter()
	if err != nil {
		logrus.Fatal("Error executing 'report': ", err)
	}

	cmdConfig, err := config.NewCommandConfig(c, rdwr)
	if err != nil {
		logrus.Fatal("Error executing 'report': ", err)
	}

	scanClient := scan.NewClient(cmdConfig.APIEndpoint, cmdConfig.Account)
	if err := getReport(c, scanClient, &utils.TimeSleeper{}); err != nil {
		logrus.Fatal("Error executing 'report': ", err)
	}
}

func getReport(c *cli.Context, scanClient scan.Client, sleeper utils.Sleeper) error {
	args := c.Args()
	if len(args) != 1 {
		return fmt.Errorf("report requires exact 1 argument [%s]", ReportImageFormat)
	}

	ctx := context.Background()
	if timeout := c.Duration(flags.TimeoutFlag); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	digest, err := resolveDigest(ctx, scanClient, args[0])
	if err != nil {
		return err
	}

	report, err := scanClient.GetReport(ctx, digest)
	if err != nil {
		return err
	}

	if c.Bool(flags.WaitFlag) {
		for !report.Finished() {
			logrus.WithFields(logrus.Fields{
				"digest": digest,
				"status": report.Status,
			}).Info("Waiting for scan to complete...")
			sleeper.Sleep(pollInterval)
			if err = ctx.Err(); err != nil {
				return errors.Wrap(err, "timed out waiting for scan to complete")
			}
			report, err = scanClient.GetReport(ctx, digest)
			if err != nil {
				return err
			}
		}
	}

	printReport(report)
	return nil
}

// resolveDigest turns the command argument into a manifest digest. A digest
// argument passes through; an image reference is looked up in the account's
// image inventory.
func resolveDigest(ctx context.Context, scanClient scan.Client, arg string) (string, error) {
	if strings.HasPrefix(arg, "sha256:") {
		return arg, nil
	}

	ref, err := relay.ParseReference(arg)
	if err != nil {
		return "", err
	}
	if ref.Digest != "" {
		return ref.Digest, nil
	}

	digest := ""
	err = scanClient.ListImages(ctx, ref.Repository, func(images []scan.ImageDetail) error {
		for _, image := range images {
			if image.Repository == ref.Repository && image.Tag == ref.Tag {
				digest = image.Digest
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if digest == "" {
		return "", fmt.Errorf("no uploaded image found matching %s", ref.String())
	}
	return digest, nil
}

func printReport(report *scan.Report) {
	w := tabwriter.NewWriter(os.Stdout, 20, 1, 3, ' ', 0)
	fmt.Fprintln(w, "DIGEST\tREPOSITORY\tTAG\tSTATUS\tRISK SCORE\tCRITICAL\tHIGH\tMEDIUM\tLOW\t")
	score := "-"
	if report.Status == scan.ScanStatusCompleted {
		score = fmt.Sprintf("%d", report.RiskScore)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t\n",
		report.Digest,
		report.Repository,
		report.Tag,
		report.Status,
		score,
		report.Findings.Critical,
		report.Findings.High,
		report.Findings.Medium,
		report.Findings.Low,
	)
	w.Flush()
}
