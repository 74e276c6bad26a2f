package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScaffoldTemplates(t *testing.T) {
	dir := t.TempDir()

	sources, err := scaffoldFiles("adder", dir, time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "main.v"),
		filepath.Join(dir, "main_test.v"),
	}, sources)

	mainV, err := os.ReadFile(filepath.Join(dir, "main.v"))
	require.NoError(t, err)
	require.Contains(t, string(mainV), "`timescale 1ns / 1ps")
	require.Contains(t, string(mainV), "module adder (")
	require.Contains(t, string(mainV), "2024-01-12 10:00:00 UTC")

	testV, err := os.ReadFile(filepath.Join(dir, "main_test.v"))
	require.NoError(t, err)
	require.Contains(t, string(testV), "module adder_test;")
	require.Contains(t, string(testV), "adder uut (")
	require.Contains(t, string(testV), `$dumpfile("adder.vcd")`)
	require.Contains(t, string(testV), "$dumpvars(0, adder_test)")
	require.Contains(t, string(testV), "$finish")

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(readme), "# adder")
	require.Contains(t, string(readme), "iverilog -o adder.vvp main.v main_test.v")
	require.Contains(t, string(readme), "vvp adder.vvp")
	require.Contains(t, string(readme), "gtkwave adder.vcd")
}
