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

package cache

import "errors"

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing and never hits. Used when
// the filesystem cache cannot be created.
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Put(key string, val interface{}) error {
	return nil
}

func (noopCache) Get(key string, i interface{}) error {
	return errors.New("noop cache")
}
