package version

import (
	"runtime"
	"strings"
)

type Version struct {
	Service string `json:"service"`
	Go      string `json:"go"`
}

func New(version string) *Version {
	version = strings.TrimSpace(version)

	if version == "" {
		version = "dev"
	}

	return &Version{
		Service: version,
		Go:      runtime.Version(),
	}
}
