package cli

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/id"
)

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestDemo_Default(t *testing.T) {
	out, logs, err := run(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Vertices")
	assert.Contains(t, out, "Links")
	assert.Contains(t, out, "total edges")
	for _, name := range defaultNames {
		assert.Contains(t, out, "value: "+name)
	}
	assert.Contains(t, logs, "demo complete")
}

func TestDemo_SeedIsReproducible(t *testing.T) {
	first, _, err := run(t, "demo", "--seed", "7")
	require.NoError(t, err)
	second, _, err := run(t, "demo", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDemo_DOT(t *testing.T) {
	out, _, err := run(t, "demo", "--seed", "3", "--names", "a,b,c", "--rounds", "4", "--dot")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `digraph "lvmesh" {`))
	assert.Equal(t, 3, strings.Count(out, "[label="))
	edges := strings.Count(out, "->")
	assert.GreaterOrEqual(t, edges, 1)
	assert.LessOrEqual(t, edges, 4)
}

func TestDemo_ConfigFileAndOverride(t *testing.T) {
	path := writeConfig(t, "names = [\"x\", \"y\"]\nrounds = 3\nseed = 11\n")

	out, _, err := run(t, "demo", "--config", path, "--dot")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "[label="))

	out, _, err = run(t, "demo", "--config", path, "--names", "p,q,r", "--dot")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "[label="))
	assert.Contains(t, out, `label="r"`)
}

func TestDemo_VerboseLogsLinks(t *testing.T) {
	_, logs, err := run(t, "-v", "demo", "--seed", "1", "--rounds", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(logs, "linked"))
	assert.Contains(t, logs, "building demo graph")
}

func TestDemo_InvalidInput(t *testing.T) {
	_, _, err := run(t, "demo", "--names", "solo")
	assert.ErrorIs(t, err, errNoNames)

	_, _, err = run(t, "demo", "--rounds=-2")
	assert.ErrorIs(t, err, errNegativeCount)

	_, _, err = run(t, "demo", "extra-arg")
	assert.Error(t, err)
}

func TestID_Seeded(t *testing.T) {
	out, _, err := run(t, "id", "--seed", "42", "--count", "3")
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	var want strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintln(&want, id.FromRand(r))
	}
	assert.Equal(t, want.String(), out)
}

func TestID_Debug(t *testing.T) {
	out, _, err := run(t, "id", "--debug")
	require.NoError(t, err)
	assert.Regexp(t, `^\[[0-9a-f]{2}, [0-9a-f]{2}, [0-9a-f]{2}, [0-9a-f]{2}\]\n$`, out)
}

func TestID_Parse(t *testing.T) {
	out, _, err := run(t, "id", "parse", "CAFE0042")
	require.NoError(t, err)
	assert.Equal(t, "cafe0042\n[ca, fe, 00, 42]\n", out)

	_, _, err = run(t, "id", "parse", "nothex!!")
	assert.ErrorIs(t, err, id.ErrInvalidHex)

	_, _, err = run(t, "id", "--count", "0")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("v0.1.0", "abc123", "2026-10-19")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvmesh v0.1.0")
	assert.Contains(t, out, "commit: abc123")
}
