// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGlyph is returned for a textual glyph that is empty, longer
	// than two characters, or whose second character is not a decimal point.
	ErrInvalidGlyph = errors.New("segment: invalid glyph")
	// ErrInvalidConfiguration is returned when display geometry or a chip
	// parameter is out of its valid range.
	ErrInvalidConfiguration = errors.New("segment: invalid configuration")
)

// ConfigError wraps ErrInvalidConfiguration with the name of the offending
// parameter. Drivers use it to report out of range values.
func ConfigError(param string, value any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfiguration, param, value)
}
