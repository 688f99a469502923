package types_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDeployResultCounts(t *testing.T) {
	result := &types.DeployResult{
		Files: []types.FileResult{
			{ID: "a.md"},
			{ID: "b.md", Err: errors.New("disk full")},
			{ID: "c.txt"},
		},
	}

	assert.Equal(t, 2, result.Succeeded())
	assert.Equal(t, 1, result.Failed())
	assert.False(t, result.Files[1].OK())
}

func TestDeployResultEmpty(t *testing.T) {
	result := &types.DeployResult{}
	assert.Zero(t, result.Succeeded())
	assert.Zero(t, result.Failed())
}
