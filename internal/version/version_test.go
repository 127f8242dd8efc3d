package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abc1234", BuildDate: "2026-01-01"}
	s := info.String()

	assert.Contains(t, s, "instgen:")
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "abc1234")
	assert.Contains(t, s, "2026-01-01")
}
