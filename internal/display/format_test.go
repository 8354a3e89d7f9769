package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical tarball 4.2 MiB", 4404019, "4.2 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 files", Count(0, "file", "files"))
	assert.Equal(t, "1 file", Count(1, "file", "files"))
	assert.Equal(t, "2 packages", Count(2, "package", "packages"))
}
