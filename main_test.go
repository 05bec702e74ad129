package main

import (
    "bytes"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
    t.Helper()
    configPath, storeFlag, verbose = "", "", false
    root := newRootCmd()
    var out bytes.Buffer
    root.SetOut(&out)
    root.SetErr(&out)
    root.SetIn(strings.NewReader(stdin))
    root.SetArgs(args)
    err := root.Execute()
    return out.String(), err
}

func TestFormatFromStdin(t *testing.T) {
    out, err := execute(t, "int main(){return 0;}", "format", "-")
    require.NoError(t, err)
    assert.Equal(t, "int main() {\n    return 0;\n}\n", out)
}

func TestFormatWrite(t *testing.T) {
    path := filepath.Join(t.TempDir(), "a.cpp")
    require.NoError(t, os.WriteFile(path, []byte("int a=1;"), 0644))
    _, err := execute(t, "", "format", "-w", path)
    require.NoError(t, err)
    raw, err := os.ReadFile(path)
    require.NoError(t, err)
    assert.Equal(t, "int a = 1;\n", string(raw))
}

func TestStats(t *testing.T) {
    out, err := execute(t, "class A {};\nstruct B {};\n", "stats")
    require.NoError(t, err)
    assert.Contains(t, out, "Lines:   3")
    assert.Contains(t, out, "Objects: 2")
    assert.Contains(t, out, "- struct B (line 2)")
}

func TestInitWritesConfig(t *testing.T) {
    dir := t.TempDir()
    cfgPath := filepath.Join(dir, "cppviz.yaml")
    out, err := execute(t, "", "init", "--config", cfgPath)
    require.NoError(t, err)
    assert.Contains(t, out, "Wrote "+cfgPath)
    _, err = os.Stat(cfgPath)
    assert.NoError(t, err)

    out, err = execute(t, "", "init", "--config", cfgPath)
    require.NoError(t, err)
    assert.Contains(t, out, "already exists")
}

func TestVersion(t *testing.T) {
    out, err := execute(t, "", "version")
    require.NoError(t, err)
    assert.Equal(t, "cppviz "+Version+"\n", out)
}
