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

// Package errs defines the failure kinds shared by the nearseg packages.
//
// Every error returned by this module wraps exactly one of the sentinels below,
// so callers can classify failures with errors.Is regardless of which package
// produced them. Both kinds are fatal to the call that raised them; nothing is
// retried internally.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a caller contract violation, such as an empty
	// segment set or an output buffer shorter than its input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPlatformUnsupported reports that a requested instruction-set tier is
	// not available on the host.
	ErrPlatformUnsupported = errors.New("platform unsupported")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument with a
// formatted description.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// PlatformUnsupported returns an error wrapping ErrPlatformUnsupported with a
// formatted description.
func PlatformUnsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPlatformUnsupported, fmt.Sprintf(format, args...))
}
