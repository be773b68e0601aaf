package env

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `
# comment
SCENE_DEBUG=true
export SCENE_LOG = logs/x.txt
SCENE_SELECTOR="canvas.webgl"
QUOTED='single'
=novalue
broken line
`
	vars, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"SCENE_DEBUG":    "true",
		"SCENE_LOG":      "logs/x.txt",
		"SCENE_SELECTOR": "canvas.webgl",
		"QUOTED":         "single",
	}, vars)
}

func TestLoad_MissingFile(t *testing.T) {
	keys, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLoad_SetsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPHERE_SCENE_TEST_A=1\nSPHERE_SCENE_TEST_B=two\n"), 0o644))
	t.Setenv("SPHERE_SCENE_TEST_A", "old")
	t.Setenv("SPHERE_SCENE_TEST_B", "")

	keys, err := Load(path)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"SPHERE_SCENE_TEST_A", "SPHERE_SCENE_TEST_B"}, keys)
	assert.Equal(t, "1", os.Getenv("SPHERE_SCENE_TEST_A"))
	assert.Equal(t, "two", os.Getenv("SPHERE_SCENE_TEST_B"))
}
