package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, "classgen dev (commit dev, built unknown)", info.String())
}

func TestShort(t *testing.T) {
	tests := []struct {
		hash string
		want string
	}{
		{hash: "0123456789abcdef", want: "0123456"},
		{hash: "abc", want: "abc"},
		{hash: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Info{CommitHash: tt.hash}.Short())
	}
}
