package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLayout(t *testing.T) {
	cmd := newCommand()
	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"desktop", "serve", "discover"}, names)
}

func TestServeRejectsMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := newCommand().Run(context.Background(), []string{"shapeboard", "--config", missing, "serve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}
