package core_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/projbuild/pkg/core"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/testutil"
	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var scenario = testutil.Lines(
	"root/",
	"  a/",
	"    b.txt",
	"  c.txt",
)

func newEnv(t *testing.T, envType testutil.EnvType, rootName, diagram string) (*testutil.TestEnvironment, core.Options) {
	t.Helper()
	env := testutil.NewTestEnvironment(t, envType, rootName)
	env.WriteFile("project-structure", diagram)
	opts := core.Options{
		WorkDir:       env.WorkDir,
		FS:            env.FS,
		StructureFile: "project-structure",
		Protected:     []string{"project-structure", "project-builder"},
	}
	return env, opts
}

func TestCreateProject_Scenario(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		t.Run(envType.String(), func(t *testing.T) {
			env, opts := newEnv(t, envType, "root", scenario)

			result, err := core.CreateProject(opts)
			require.NoError(t, err)
			require.NotNil(t, result.Report)

			assert.Equal(t, types.OutcomeUpdated, result.Report.Outcome())
			assert.Equal(t, []string{"./a/", "./a/b.txt", "./c.txt", "./project-structure"}, env.Tree())

			again, err := core.CreateProject(opts)
			require.NoError(t, err)
			assert.Equal(t, types.OutcomeNoChanges, again.Report.Outcome())
		})
	}
}

func TestCreateProject_RootMismatch(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "elsewhere", scenario)

	result, err := core.CreateProject(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootMismatch))
	assert.False(t, errors.IsFatal(err))
	assert.Nil(t, result.Report)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "root", details["stated"])
	assert.Equal(t, "elsewhere", details["actual"])

	assert.Equal(t, []string{"./project-structure"}, env.Tree())
}

func TestCreateProject_MissingStructureIsFatal(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "root")

	_, err := core.CreateProject(core.Options{WorkDir: env.WorkDir, FS: env.FS})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStructureNotFound))
	assert.True(t, errors.IsFatal(err))
}

func TestCleanupProject_Declined(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "root", scenario)
	_, err := core.CreateProject(opts)
	require.NoError(t, err)

	confirmer := &testutil.MockConfirmer{}
	confirmer.On("Confirm", mock.AnythingOfType("string")).Return(false, nil)

	result, err := core.CleanupProject(opts, false, confirmer)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.True(t, result.Report.Aborted)
	assert.Empty(t, result.Report.Removed())

	assert.Equal(t, []string{"./a/", "./a/b.txt", "./c.txt", "./project-structure"}, env.Tree())
	confirmer.AssertExpectations(t)
}

func TestCleanupProject_Approved(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "root", scenario)
	_, err := core.CreateProject(opts)
	require.NoError(t, err)

	confirmer := &testutil.MockConfirmer{}
	confirmer.On("Confirm", core.CleanupWarning("project-structure", false, opts.Protected)).Return(true, nil)

	result, err := core.CleanupProject(opts, false, confirmer)
	require.NoError(t, err)
	assert.False(t, result.Report.Aborted)
	assert.Equal(t, []string{"./project-structure"}, env.Tree())
	confirmer.AssertExpectations(t)
}

func TestCleanupProject_RootMismatchSkipsPrompt(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "other", scenario)
	env.WriteFile("c.txt", "")

	confirmer := &testutil.MockConfirmer{}

	_, err := core.CleanupProject(opts, true, confirmer)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootMismatch))
	confirmer.AssertNotCalled(t, "Confirm", mock.Anything)
	assert.True(t, env.Exists("c.txt"))
}

func TestCleanupProject_Forceful(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "root", scenario)
	env.WriteFile("project-builder", "#!/bin/sh\n")
	env.WriteFile("notes/todo.md", "x")
	env.WriteFile("stray.log", "x")

	result, err := core.CleanupProject(opts, true, types.AlwaysConfirm)
	require.NoError(t, err)
	assert.True(t, result.Report.Forceful)
	assert.Equal(t, []string{"./project-builder", "./project-structure"}, env.Tree())
}

func TestCleanupWarning(t *testing.T) {
	standard := core.CleanupWarning("project-structure", false, nil)
	assert.Contains(t, standard, "specified in the project-structure file")

	forceful := core.CleanupWarning("project-structure", true, []string{"project-structure", "project-builder"})
	assert.Contains(t, forceful, "in the current working directory")
	assert.Contains(t, forceful, `except "project-structure" and "project-builder"`)
}

func TestAnalyze_DoesNotTouchFilesystem(t *testing.T) {
	env, opts := newEnv(t, testutil.EnvMemoryOnly, "anything", scenario)

	s, err := core.Analyze(opts)
	require.NoError(t, err)
	assert.Equal(t, "root", s.RootName())
	assert.ElementsMatch(t, []string{"./a/", "./a/b.txt", "./c.txt"}, testutil.PathStrings(s.Paths))
	assert.Equal(t, []string{"./project-structure"}, env.Tree())
}

func TestCleanupProject_ForcefulKeepsStructureFileByDefault(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "root")
	env.WriteFile("project-structure", scenario)
	env.WriteFile("project-builder", "#!/bin/sh\n")
	env.WriteFile("stray.log", "x")

	confirmer := &testutil.MockConfirmer{}
	confirmer.On("Confirm", mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, `except "project-structure" and "project-builder"`)
	})).Return(true, nil)

	result, err := core.CleanupProject(core.Options{WorkDir: env.WorkDir, FS: env.FS}, true, confirmer)
	require.NoError(t, err)
	assert.Equal(t, []string{"stray.log"}, result.Report.ForcedFiles)
	assert.Equal(t, []string{"./project-builder", "./project-structure"}, env.Tree())
	confirmer.AssertExpectations(t)
}

func TestCleanupProject_ForcefulKeepsNestedStructureFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, "root")
	env.WriteFile("docs/tree", scenario)
	env.WriteFile("docs/notes.md", "x")
	env.WriteFile("c.txt", "")

	opts := core.Options{
		WorkDir:       env.WorkDir,
		FS:            env.FS,
		StructureFile: "docs/tree",
		Protected:     []string{"tree", "project-builder"},
	}
	result, err := core.CleanupProject(opts, true, types.AlwaysConfirm)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/notes.md"}, result.Report.ForcedFiles)
	assert.Equal(t, []string{"./docs/", "./docs/tree"}, env.Tree())

	// the structure file survives, so the next run still loads it
	_, err = core.Analyze(opts)
	assert.NoError(t, err)
}
