// pkg/testutil/environment_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Verify test environments isolate roo-conf directories

package testutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/rooconf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		env := testutil.NewTestEnvironment(t, envType)

		assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
		assert.Equal(t, env.WorkDir, env.Paths.WorkDir())
		assert.Equal(t, filepath.Join(env.WorkDir, ".roo"), env.Paths.DeployDir())
		assert.True(t, strings.HasPrefix(env.Paths.ConfigFile(), env.HomeDir))

		_, set := os.LookupEnv("ROO_CONF_EDITOR")
		assert.False(t, set)

		env.WriteCache(map[string]string{"modes/a.md": "a"})
		data, err := env.FS.ReadFile(filepath.Join(env.Paths.TemplatesDir(), "modes", "a.md"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(data))
	}
}
