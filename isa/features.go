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
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// HostFeatures describes the host CPU for diagnostics. It is informational
// only; tier selection uses the probe flags.
type HostFeatures struct {
	Vendor       string
	Brand        string
	LogicalCores int
	Flags        []string
	Best         Tier
}

func (f HostFeatures) String() string {
	return fmt.Sprintf("%s %q, %d cores, best tier %v", f.Vendor, f.Brand, f.LogicalCores, f.Best)
}

// Features reports the host CPU and the best tier it supports.
func Features() HostFeatures {
	return HostFeatures{
		Vendor:       cpuid.CPU.VendorString,
		Brand:        cpuid.CPU.BrandName,
		LogicalCores: cpuid.CPU.LogicalCores,
		Flags:        cpuid.CPU.FeatureSet(),
		Best:         Best(),
	}
}
