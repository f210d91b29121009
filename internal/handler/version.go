package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables, injected with -ldflags "-X"
var (
	Version   = "dev"
	GitCommit = "unset"
)

// HandleVersion reports which build is running
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   ResolveVersion(),
			GoVersion: runtime.Version(),
			GitCommit: GitCommit,
		})
	}
}

// ResolveVersion prefers the build-time version, then $VERSION, then "dev"
func ResolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
