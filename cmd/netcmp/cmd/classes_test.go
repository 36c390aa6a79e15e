package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netcompare/netlist"
)

func TestLoadClassesBuildsSwappableTerminalGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.yaml")
	contents := `
classes:
  - name: RES
    compare_param: 0
    terminals:
      - {name: A, id: 1}
      - {name: B, id: 2}
    swappable:
      - [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	specs, err := loadClasses(path)
	require.NoError(t, err)
	require.Contains(t, specs, "RES")

	spec := specs["RES"]
	assert.Equal(t, netlist.TerminalID(1), spec.Terminals["A"])
	assert.Equal(t, netlist.TerminalID(2), spec.Terminals["B"])
	assert.Equal(t, netlist.TerminalID(1), spec.Class.NormalizeTerminalID(2))
}

func TestLoadClassesRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.yaml")
	contents := `
classes:
  - name: RES
    terminals: [{name: A, id: 1}]
  - name: RES
    terminals: [{name: A, id: 1}]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := loadClasses(path)
	assert.Error(t, err)
}
