// parser_test.go
package gurobi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   Version
	}{
		{
			name:   "release banner",
			output: "Gurobi Optimizer version 9.5.2 build v9.5.2rc0 (linux64)",
			want:   Version{Major: "9", Minor: "5", Patch: "2"},
		},
		{
			name:   "banner surrounded by noise",
			output: "Set parameter Username\nGurobi Optimizer version 10.0.3 build v10.0.3rc0\nCopyright (c) 2023\n",
			want:   Version{Major: "10", Minor: "0", Patch: "3"},
		},
		{
			name:   "two digit minor kept literal",
			output: "Gurobi Optimizer version 1.01.0",
			want:   Version{Major: "1", Minor: "01", Patch: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion([]byte(tt.output))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionUnreadable(t *testing.T) {
	tests := []struct {
		name   string
		output []byte
	}{
		{name: "empty output", output: nil},
		{name: "unrelated text", output: []byte("command not licensed\n")},
		{name: "two components only", output: []byte("Gurobi Optimizer version 9.5\n")},
		{name: "truncated banner", output: []byte("Gurobi Optimizer version ")},
		{name: "invalid utf8", output: []byte{0xff, 0xfe, 0xfd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion(tt.output)
			assert.ErrorIs(t, err, ErrVersionUnreadable)
		})
	}
}

func TestVersionLibrary(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{name: "single digits", version: Version{Major: "9", Minor: "5", Patch: "2"}, want: "gurobi95"},
		// Concatenation is literal: gurobi101 can mean 10.1 or 1.01. The
		// link-name scheme is ambiguous and intentionally left that way.
		{name: "two digit major", version: Version{Major: "10", Minor: "1", Patch: "0"}, want: "gurobi101"},
		{name: "two digit minor", version: Version{Major: "1", Minor: "01", Patch: "0"}, want: "gurobi101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.Library())
		})
	}
}
