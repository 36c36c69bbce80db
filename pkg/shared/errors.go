package shared

import (
	"fmt"
	"strings"
)

// MissingEnvError is returned before any network call when required
// configuration is absent.
type MissingEnvError struct {
	Keys []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s (set them in the environment or .env)", strings.Join(e.Keys, ", "))
}
