package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of nomoject.
// Use semantic versioning: MAJOR.MINOR.PATCH
const Version = "1.0.0"

// String describes the build: version, Go release and target platform.
func String() string {
	return fmt.Sprintf("nomoject %s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
