package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
	"github.com/stevegt/mlintro/trace"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.sexpr")
	err := os.WriteFile(cfg, []byte("(demo (rate 0.01 0.1) (epochs 10) (seed 42 7))"), 0644)
	Tassert(t, err == nil, err)
	tracePath := filepath.Join(dir, "demo.trace")

	err = run("../../testdata/data.csv", cfg, 2, true, tracePath)
	Tassert(t, err == nil, err)

	buf, err := os.ReadFile(tracePath)
	Tassert(t, err == nil, err)
	tr, err := trace.FromBytes(buf)
	Tassert(t, err == nil, err)
	Tassert(t, tr.Name == "demo", tr.Name)
	lines, err := tr.Lines()
	Tassert(t, err == nil, err)
	Tassert(t, len(lines) == 10, lines)
}

func TestRunDefaults(t *testing.T) {
	err := run("../../testdata/data.csv", "", 1, false, "")
	Tassert(t, err == nil, err)
}

func TestRunErrors(t *testing.T) {
	err := run("../../testdata/missing.csv", "", 1, false, "")
	Tassert(t, err != nil)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.sexpr")
	err = os.WriteFile(cfg, []byte("(demo (color red))"), 0644)
	Tassert(t, err == nil, err)
	err = run("../../testdata/data.csv", cfg, 1, false, "")
	Tassert(t, err != nil)
}

func TestFormatLines(t *testing.T) {
	got := formatLines([]mlintro.Line{{Slope: 0.5, Intercept: -1}, {Slope: 2, Intercept: 0.25}})
	Tassert(t, got == "[(0.5, -1), (2, 0.25)]", got)
	Tassert(t, formatLines(nil) == "[]", formatLines(nil))
}
