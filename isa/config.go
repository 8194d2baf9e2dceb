// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isa

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/akhenakh/nearseg/errs"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "NEARSEG"

// Config is the environment configuration of the dispatcher.
type Config struct {
	// SIMD forces a tier for every Auto request (NEARSEG_SIMD).
	SIMD Tier `envconfig:"SIMD" default:"auto"`
}

// LoadConfig reads Config from the environment. An unknown tier name is an
// invalid argument.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errs.InvalidArgument("%s_SIMD: %v", EnvPrefix, err)
	}
	return cfg, nil
}
