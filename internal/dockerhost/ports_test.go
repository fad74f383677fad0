package dockerhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsedHostPorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		psOutput string
		want     map[int]bool
	}{
		{
			name:     "empty output",
			psOutput: "",
			want:     map[int]bool{},
		},
		{
			name:     "single binding",
			psOutput: "0.0.0.0:8001->8000/tcp",
			want:     map[int]bool{8001: true},
		},
		{
			name:     "multiple bindings per line",
			psOutput: "0.0.0.0:8001->8000/tcp, [::]:8001->8000/tcp\n0.0.0.0:8002->8000/tcp",
			want:     map[int]bool{8001: true, 8002: true},
		},
		{
			name:     "no host binding is ignored",
			psOutput: "8000/tcp",
			want:     map[int]bool{},
		},
		{
			name:     "garbage is ignored",
			psOutput: "not:a->port\n0.0.0.0:9000->8000/tcp",
			want:     map[int]bool{9000: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UsedHostPorts(tt.psOutput))
		})
	}
}

func TestNextFreePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		used map[int]bool
		want int
	}{
		{name: "nothing used", used: map[int]bool{}, want: 8001},
		{name: "base taken", used: map[int]bool{8001: true}, want: 8002},
		{name: "contiguous run", used: map[int]bool{8001: true, 8002: true}, want: 8003},
		{name: "gap is reused", used: map[int]bool{8001: true, 8003: true}, want: 8002},
		{name: "unrelated ports ignored", used: map[int]bool{80: true, 443: true}, want: 8001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NextFreePort(tt.used, BasePort))
		})
	}
}
