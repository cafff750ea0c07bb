// version.go implements the compose tool version query. The version is
// re-queried on every call: the external binary can be swapped between
// calls and this layer caches nothing.
package compose

import (
	"context"
	"fmt"
	"regexp"
)

// versionPattern extracts the semantic version from the compose version
// output. The --short format prints the bare version (possibly with a
// leading "v", e.g. "v2.27.0"); matching digits-and-dots keeps the
// parser tolerant of either form.
var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)*`)

// Version returns the semantic version string reported by the external
// compose tool, matching the pattern `\d+(\.\d+)*`. It equals what a
// direct `docker compose version --short` query reports.
func (s *Session) Version(ctx context.Context) (string, error) {
	out, err := s.compose(ctx, "version", "--short")
	if err != nil {
		return "", fmt.Errorf("could not determine docker compose version: %s", causeOf(out, err))
	}

	version := versionPattern.FindString(string(out))
	if version == "" {
		return "", fmt.Errorf("could not determine docker compose version: unexpected output %q", causeOf(out, nil))
	}

	s.log.Debug().Str("version", version).Msg("compose version")
	return version, nil
}
