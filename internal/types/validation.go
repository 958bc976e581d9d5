// Package types holds shared validation helpers used by the api layer.
package types

import (
	"fmt"
	"strings"
)

// ValidateIDPresent rejects empty or whitespace-only identifiers before a
// request is built, so a malformed call never reaches the wire.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}
