package g1

import "github.com/gerri-robotics/g1bridge-go/internal/bindings"

// Populated at build time via -ldflags "-X".
var (
	Version         = "v0.0.0-in-progress"
	UpstreamSDK     = "unitree_sdk2"
	UpstreamVersion = "unknown"
)

// BridgeVersion returns the bridge's semantic version.
func BridgeVersion() string {
	return Version
}

// SDKVersion describes the linked control library, or reports that none is
// linked into this binary.
func SDKVersion() string {
	if !bindings.Linked() {
		return "not linked"
	}
	return UpstreamSDK + " " + UpstreamVersion
}
