package params

import "fmt"

const (
	VersionMajor = 0          // Major version of the gaccount release line
	VersionMinor = 3          // Minor version, bumped when the keystore options change
	VersionPatch = 0          // Patch version
	VersionMeta  = "keystore" // Release channel appended to the version string
)

// Version is the dotted version with the release channel, e.g. "0.3.0-keystore".
var Version = func() string {
	v := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if VersionMeta != "" {
		v += "-" + VersionMeta
	}
	return v
}()

// VersionWithCommit appends the first 8 characters of a build commit, if one
// was injected with -ldflags.
func VersionWithCommit(gitCommit string) string {
	if len(gitCommit) >= 8 {
		return Version + "-" + gitCommit[:8]
	}
	return Version
}
