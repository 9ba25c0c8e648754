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

package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/containersec/cs-cli/cs-cli/modules/utils/cache"
)

const tokenCacheName = "registry-tokens"

// Tokens are refreshed this long before they actually expire, so that a push
// never starts with credentials about to lapse mid-transfer.
const tokenExpiryLeeway = 2 * time.Minute

// cachedTokenSource caches registry tokens on disk between invocations.
// Tokens are short-lived; expired entries are refreshed through the API.
type cachedTokenSource struct {
	client Client
	cache  cache.Cache
	now    func() time.Time
}

// NewCachedTokenSource wraps the API client's token exchange with a
// filesystem cache. If the cache directory cannot be created, tokens are
// simply fetched on every call.
func NewCachedTokenSource(client Client) relay.TokenSource {
	tokenCache, err := cache.NewFSCache(tokenCacheName)
	if err != nil {
		log.Debug("Could not create token cache: ", err)
		tokenCache = cache.NewNoopCache()
	}
	return newCachedTokenSource(client, tokenCache)
}

func newCachedTokenSource(client Client, tokenCache cache.Cache) relay.TokenSource {
	return &cachedTokenSource{
		client: client,
		cache:  tokenCache,
		now:    time.Now,
	}
}

func (s *cachedTokenSource) RegistryAuth(ctx context.Context, account relay.AccountContext) (*relay.RegistryAuth, error) {
	key := tokenCacheKey(account)

	cached := new(relay.RegistryAuth)
	if err := s.cache.Get(key, cached); err == nil && s.fresh(cached) {
		log.Debug("Using cached registry token")
		return cached, nil
	}

	auth, err := s.client.RegistryAuth(ctx, account)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(key, auth); err != nil {
		log.Debug("Could not cache registry token: ", err)
	}
	return auth, nil
}

func (s *cachedTokenSource) fresh(auth *relay.RegistryAuth) bool {
	if auth.Username == "" || auth.ExpiresAt.IsZero() {
		return false
	}
	return s.now().Before(auth.ExpiresAt.Add(-tokenExpiryLeeway))
}

// tokenCacheKey names the cache entry for an account. Keyed on a digest of
// the access key so that credentials never appear in file names.
func tokenCacheKey(account relay.AccountContext) string {
	sum := sha256.Sum256([]byte(account.AccessKey + "@" + account.Registry))
	return hex.EncodeToString(sum[:])
}
