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

// Package scan is the HTTP client of the scanning service's public API. It
// covers the registry token exchange, the image inventory, and scan reports.
package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/pkg/errors"
)

//go:generate mockgen.sh github.com/containersec/cs-cli/cs-cli/modules/clients/scan Client mock/$GOFILE

const (
	registryTokenPath = "/v1/registry/token"
	imagesPath        = "/v1/images"
	reportsPath       = "/v1/reports/"

	defaultRequestTimeout = 30 * time.Second

	// Listing stops after this many pages unless a repository narrows the
	// query, mirroring the service's own inventory limits.
	maxListPages = 50
)

// ProcessImageDetails is the callback invoked for every page of images.
type ProcessImageDetails func(images []ImageDetail) error

// Client is the scanning-service API interface.
type Client interface {
	RegistryAuth(ctx context.Context, account relay.AccountContext) (*relay.RegistryAuth, error)
	ListImages(ctx context.Context, repository string, processFn ProcessImageDetails) error
	GetReport(ctx context.Context, digest string) (*Report, error)
}

// ImageDetail is one entry of the service's image inventory.
type ImageDetail struct {
	Repository string    `json:"repository"`
	Tag        string    `json:"tag"`
	Digest     string    `json:"digest"`
	SizeBytes  int64     `json:"size_bytes"`
	PushedAt   time.Time `json:"pushed_at"`
	ScanStatus string    `json:"scan_status"`
	RiskScore  int       `json:"risk_score"`
}

// FindingCounts groups a report's findings by severity.
type FindingCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Report is the scan result for one uploaded image.
type Report struct {
	Digest      string        `json:"digest"`
	Repository  string        `json:"repository"`
	Tag         string        `json:"tag"`
	Status      string        `json:"status"`
	RiskScore   int           `json:"risk_score"`
	Findings    FindingCounts `json:"findings"`
	CompletedAt time.Time     `json:"completed_at,omitempty"`
}

// Scan statuses reported by the service.
const (
	ScanStatusQueued    = "queued"
	ScanStatusScanning  = "scanning"
	ScanStatusCompleted = "completed"
	ScanStatusFailed    = "failed"
)

// Finished returns true once the scan reached a terminal status.
func (r *Report) Finished() bool {
	return r.Status == ScanStatusCompleted || r.Status == ScanStatusFailed
}

// scanClient implements Client
type scanClient struct {
	endpoint string
	account  relay.AccountContext
	client   *http.Client
}

// NewClient creates a new scanning-service client scoped to the account.
func NewClient(endpoint string, account relay.AccountContext) Client {
	return newClient(endpoint, account, &http.Client{Timeout: defaultRequestTimeout})
}

func newClient(endpoint string, account relay.AccountContext, httpClient *http.Client) Client {
	return &scanClient{
		endpoint: endpoint,
		account:  account,
		client:   httpClient,
	}
}

type registryTokenRequest struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

type registryTokenResponse struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Registry  string    `json:"registry"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegistryAuth exchanges the account's API keys for short-lived registry
// credentials. Rejected credentials surface as *relay.AuthenticationError.
func (c *scanClient) RegistryAuth(ctx context.Context, account relay.AccountContext) (*relay.RegistryAuth, error) {
	log.Debug("Requesting registry token...")

	body, err := json.Marshal(registryTokenRequest{
		AccessKey: account.AccessKey,
		SecretKey: account.SecretKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialize token request")
	}

	var token registryTokenResponse
	if err := c.do(ctx, "POST", registryTokenPath, nil, bytes.NewReader(body), &token); err != nil {
		return nil, err
	}

	registry := token.Registry
	if registry == "" {
		registry = account.Registry
	}

	return &relay.RegistryAuth{
		Username:  token.Username,
		Password:  token.Password,
		Registry:  registry,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

type listImagesResponse struct {
	Images   []ImageDetail `json:"images"`
	NextPage int           `json:"next_page"`
}

// ListImages pages through the account's image inventory, invoking processFn
// once per page. An empty repository lists everything.
func (c *scanClient) ListImages(ctx context.Context, repository string, processFn ProcessImageDetails) error {
	log.Debug("Getting images from the scanning service...")

	page := 1
	for {
		query := url.Values{}
		if repository != "" {
			query.Set("repository", repository)
		}
		if page > 1 {
			query.Set("page", strconv.Itoa(page))
		}

		var resp listImagesResponse
		if err := c.do(ctx, "GET", imagesPath, query, nil, &resp); err != nil {
			return err
		}
		if err := processFn(resp.Images); err != nil {
			return err
		}
		if resp.NextPage == 0 {
			return nil
		}
		if repository == "" && page >= maxListPages {
			return errors.New("please specify the repository name if you wish to see more")
		}
		page = resp.NextPage
	}
}

// GetReport fetches the scan report for an uploaded digest.
func (c *scanClient) GetReport(ctx context.Context, digest string) (*Report, error) {
	log.WithFields(log.Fields{
		"digest": digest,
	}).Debug("Getting scan report")

	report := new(Report)
	if err := c.do(ctx, "GET", reportsPath+url.PathEscape(digest), nil, nil, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *scanClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out interface{}) error {
	req, err := http.NewRequest(method, c.endpoint+path, body)
	if err != nil {
		return errors.Wrap(err, "unable to build request")
	}
	req = req.WithContext(ctx)
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.account.AccessKey, c.account.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request to scanning service failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &relay.AuthenticationError{
			Cause: errors.Errorf("scanning service returned %s", resp.Status),
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.Errorf("scanning service returned %s for %s %s", resp.Status, method, path)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "unable to read response")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, fmt.Sprintf("unable to decode response for %s %s", method, path))
	}
	return nil
}
