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

//go:build !(amd64 && goexperiment.simd)

package vecalg

func normalizeWide(dst, src []byte) { BaseNormalizeBools(dst, src) }

func normalizeNarrow(dst, src []byte) { normalizeLane(dst, src) }

func indexOfWide[T uint8 | uint16 | uint32](s []T, v T) int { return BaseIndexOf(s, v) }

func indexOfNarrow[T uint8 | uint16 | uint32](s []T, v T) int { return indexOfLane(s, v) }
