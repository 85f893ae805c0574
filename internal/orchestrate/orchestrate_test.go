package orchestrate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/armor-abi/armor/internal/armorlog"
	"github.com/armor-abi/armor/internal/orchestrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHeader(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunComparesEachJobIndependently(t *testing.T) {
	dir := t.TempDir()
	baseA := writeHeader(t, dir, "a_base.h", "struct A { int x; };\n")
	headA := writeHeader(t, dir, "a_head.h", "struct A { int x; int y; };\n")
	baseB := writeHeader(t, dir, "b_base.h", "int f(void);\n")
	headB := writeHeader(t, dir, "b_head.h", "int f(void);\n")

	jobs := []orchestrate.HeaderJob{
		{Name: "a.h", BaseHeaderPath: baseA, HeadHeaderPath: headA},
		{Name: "b.h", BaseHeaderPath: baseB, HeadHeaderPath: headB},
	}

	results := orchestrate.Run(context.Background(), jobs, orchestrate.Options{
		Workers: 2,
		Log:     armorlog.Discard(),
	})

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NotEmpty(t, results[0].Changes)
	assert.NoError(t, results[1].Err)
	assert.Empty(t, results[1].Changes)
}

func TestRunReportsParseErrorPerJob(t *testing.T) {
	dir := t.TempDir()
	head := writeHeader(t, dir, "head.h", "int f(void);\n")

	jobs := []orchestrate.HeaderJob{
		{Name: "missing.h", BaseHeaderPath: filepath.Join(dir, "does-not-exist.h"), HeadHeaderPath: head},
	}

	results := orchestrate.Run(context.Background(), jobs, orchestrate.Options{Log: armorlog.Discard()})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestRunEmptyJobList(t *testing.T) {
	results := orchestrate.Run(context.Background(), nil, orchestrate.Options{})
	assert.Nil(t, results)
}
