package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInvoke_PrintsHelloView(t *testing.T) {
	out, err := execute(t, "invoke", "--style", "notty", "user.say-hello", "user.say-hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello World!")
}

func TestInvoke_UnknownCommandFails(t *testing.T) {
	_, err := execute(t, "invoke", "user.say-helo")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "did you mean user.say-hello")
}

func TestInvoke_ShellCommandsAreNotInterpreted(t *testing.T) {
	_, err := execute(t, "invoke", ":quit")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "invoke :quit: unknown command")
}

func TestRoot_AcceptsNoBanner(t *testing.T) {
	_, err := execute(t, "--no-banner")
	require.NoError(t, err)

	_, err = execute(t, "run", "--no-banner")
	require.NoError(t, err)
}

func TestObjects_ListsSingleHelloPanel(t *testing.T) {
	out, err := execute(t, "objects", "user.say-hello", "user.say-hello")
	require.NoError(t, err)

	var infos []domain.ObjectInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "user.hello", infos[0].TemplateID)
	assert.Equal(t, "# Hello World!\n", infos[0].View)
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"commands":[{"id":"x","action":{"invoke":"y"}}]}`), 0o644))

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (0 behaviors, 0 templates, 1 commands)")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("commands:\n  - id: x\n"), 0o644))
	_, err = execute(t, "validate", bad)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	version := strings.TrimSpace(arbor.Version)

	out, err := execute(t, "version", "--short=false")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("arbor %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH), out)

	out, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)

	_, err = execute(t, "version", "extra")
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, `t_user_hello -- "close" --> b_user_on_close_destroy`)
}
