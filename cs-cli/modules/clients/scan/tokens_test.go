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
	"errors"
	"testing"
	"time"

	"github.com/containersec/cs-cli/cs-cli/modules/relay"
	"github.com/stretchr/testify/assert"
)

type fakeTokenClient struct {
	Client

	auth  *relay.RegistryAuth
	err   error
	calls int
}

func (f *fakeTokenClient) RegistryAuth(ctx context.Context, account relay.AccountContext) (*relay.RegistryAuth, error) {
	f.calls++
	return f.auth, f.err
}

type memoryCache struct {
	entries map[string]relay.RegistryAuth
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]relay.RegistryAuth)}
}

func (m *memoryCache) Put(key string, value interface{}) error {
	m.entries[key] = *value.(*relay.RegistryAuth)
	return nil
}

func (m *memoryCache) Get(key string, i interface{}) error {
	entry, ok := m.entries[key]
	if !ok {
		return errors.New("not found")
	}
	*i.(*relay.RegistryAuth) = entry
	return nil
}

func validAuth() *relay.RegistryAuth {
	return &relay.RegistryAuth{
		Username:  "tokenuser",
		Password:  "tokenpass",
		Registry:  testRegistry,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestCachedTokenSourceFetchesAndCaches(t *testing.T) {
	client := &fakeTokenClient{auth: validAuth()}
	tokenCache := newMemoryCache()
	tokens := newCachedTokenSource(client, tokenCache)

	auth, err := tokens.RegistryAuth(context.Background(), testAccount())
	assert.NoError(t, err, "Error getting token")
	assert.Equal(t, "tokenuser", auth.Username)
	assert.Equal(t, 1, client.calls)
	assert.Len(t, tokenCache.entries, 1, "Expected the token to be cached")

	// Second call is served from the cache.
	_, err = tokens.RegistryAuth(context.Background(), testAccount())
	assert.NoError(t, err, "Error getting cached token")
	assert.Equal(t, 1, client.calls, "Expected no second exchange")
}

func TestCachedTokenSourceRefreshesExpired(t *testing.T) {
	expired := validAuth()
	expired.ExpiresAt = time.Now().Add(time.Minute) // inside the leeway window

	client := &fakeTokenClient{auth: validAuth()}
	tokenCache := newMemoryCache()
	tokenCache.Put(tokenCacheKey(testAccount()), expired)
	tokens := newCachedTokenSource(client, tokenCache)

	auth, err := tokens.RegistryAuth(context.Background(), testAccount())
	assert.NoError(t, err, "Error refreshing token")
	assert.Equal(t, 1, client.calls, "Expired entry should be refreshed through the API")
	assert.True(t, auth.ExpiresAt.After(expired.ExpiresAt))
}

func TestCachedTokenSourceIgnoresMalformedEntry(t *testing.T) {
	client := &fakeTokenClient{auth: validAuth()}
	tokenCache := newMemoryCache()
	tokenCache.Put(tokenCacheKey(testAccount()), &relay.RegistryAuth{})
	tokens := newCachedTokenSource(client, tokenCache)

	_, err := tokens.RegistryAuth(context.Background(), testAccount())
	assert.NoError(t, err, "Error getting token")
	assert.Equal(t, 1, client.calls, "Entry without credentials should not be trusted")
}

func TestCachedTokenSourceExchangeFails(t *testing.T) {
	client := &fakeTokenClient{err: &relay.AuthenticationError{Cause: errors.New("invalid keys")}}
	tokens := newCachedTokenSource(client, newMemoryCache())

	_, err := tokens.RegistryAuth(context.Background(), testAccount())
	assert.Error(t, err, "Expected the exchange failure to surface")
	assert.IsType(t, &relay.AuthenticationError{}, err)
}

func TestTokenCacheKeyHidesCredentials(t *testing.T) {
	key := tokenCacheKey(testAccount())
	assert.NotContains(t, key, testAccessKey, "Cache key must not leak the access key")
	assert.Len(t, key, 64)

	other := testAccount()
	other.AccessKey = "different"
	assert.NotEqual(t, key, tokenCacheKey(other), "Accounts must not share cache entries")
}
