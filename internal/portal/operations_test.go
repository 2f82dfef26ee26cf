package portal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStop_NotRunning(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callPS, "other\n")

	require.NoError(t, f.launcher.Stop(context.Background()))

	assert.Empty(t, f.mutating())
	assert.Equal(t, []string{"Container onion_portal is not running."}, f.report.levels("info"))
}

func TestStop_Running(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callPS, "onion_portal\n")
	f.stub.StubOK("docker stop onion_portal", "onion_portal\n")

	require.NoError(t, f.launcher.Stop(context.Background()))

	assert.Equal(t, []string{"docker stop onion_portal"}, f.mutating())
	assert.Equal(t, []string{"Container onion_portal stopped."}, f.report.levels("success"))
}

func TestStop_Failure(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callPS, "onion_portal\n")
	f.stub.StubExit("docker stop onion_portal", 1)

	err := f.launcher.Stop(context.Background())

	assert.ErrorIs(t, err, ErrStopFailed)
	assert.Len(t, f.report.levels("error"), 1)
}

func TestStop_RuntimeMissing(t *testing.T) {
	f := newFixture(t, false)

	assert.ErrorIs(t, f.launcher.Stop(context.Background()), ErrRuntimeUnavailable)
	assert.Empty(t, f.stub.Calls())
}

func TestConnect_NoContainers(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "")

	called := false
	err := f.launcher.Connect(context.Background(), func([]string) (string, error) {
		called = true
		return "", nil
	})

	require.NoError(t, err)
	assert.False(t, called, "selector must not run when nothing is listed")
	assert.Equal(t, []string{"No containers found for image onion_portal."}, f.report.levels("info"))
}

func TestConnect_QueryFailureTreatedAsEmpty(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubExit(callAncestor, 1)

	require.NoError(t, f.launcher.Connect(context.Background(), FixedSelection("1")))
	assert.Empty(t, f.mutating())
}

func TestConnect_ByIndex(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "alpha\nbeta\n")
	f.stub.StubOK(callPS, "")
	f.stub.StubOK("docker start beta", "beta\n")

	var offered []string
	err := f.launcher.Connect(context.Background(), func(names []string) (string, error) {
		offered = names
		return " 2 ", nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, offered)
	assert.Equal(t, []string{"docker start beta"}, f.mutating())
}

func TestConnect_ByName(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "alpha\nbeta\n")
	f.stub.StubOK(callPS, "")
	f.stub.StubOK("docker start alpha", "alpha\n")

	require.NoError(t, f.launcher.Connect(context.Background(), FixedSelection("alpha")))
	assert.Equal(t, []string{"docker start alpha"}, f.mutating())
}

func TestConnect_InvalidSelectionMutatesNothing(t *testing.T) {
	for _, raw := range []string{"0", "3", "-1", "gamma", "", "Alpha"} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture(t, true)
			f.stub.StubOK(callAncestor, "alpha\nbeta\n")

			err := f.launcher.Connect(context.Background(), FixedSelection(raw))

			assert.ErrorIs(t, err, ErrInvalidSelection)
			assert.Empty(t, f.mutating())
			assert.Equal(t, []string{callAncestor}, f.stub.Calls())
		})
	}
}

func TestConnect_AlreadyRunning(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "alpha\n")
	f.stub.StubOK(callPS, "alpha\n")

	require.NoError(t, f.launcher.Connect(context.Background(), FixedSelection("1")))
	assert.Empty(t, f.mutating())
	assert.Equal(t, []string{"Container alpha is already running."}, f.report.levels("info"))
}

func TestConnect_StartFailure(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "alpha\n")
	f.stub.StubOK(callPS, "")
	f.stub.StubExit("docker start alpha", 1)

	assert.ErrorIs(t, f.launcher.Connect(context.Background(), FixedSelection("1")), ErrStartFailed)
}

func TestConnect_SelectorErrorPropagates(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "alpha\n")
	boom := errors.New("input closed")

	err := f.launcher.Connect(context.Background(), func([]string) (string, error) {
		return "", boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.mutating())
}

func TestRemoveAll_None(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "")

	require.NoError(t, f.launcher.RemoveAll(context.Background()))
	assert.Empty(t, f.mutating())
}

func TestRemoveAll_EachContainerIndependently(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "a\nb\nc\n")
	f.stub.StubOK("docker rm -f a", "a\n")
	f.stub.StubExit("docker rm -f b", 1)
	f.stub.StubOK("docker rm -f c", "c\n")

	err := f.launcher.RemoveAll(context.Background())

	assert.ErrorIs(t, err, ErrRemoveFailed)
	assert.Contains(t, err.Error(), "b")
	assert.Equal(t, []string{"docker rm -f a", "docker rm -f b", "docker rm -f c"}, f.mutating())
	assert.Equal(t, []string{"Container a removed.", "Container c removed."}, f.report.levels("success"))
	assert.Equal(t, []string{"Could not remove container b."}, f.report.levels("error"))
}

func TestRemoveAll_AllFail(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "a\nb\n")
	f.stub.StubExit("docker rm -f a", 1)
	f.stub.StubExit("docker rm -f b", 1)

	err := f.launcher.RemoveAll(context.Background())

	assert.ErrorIs(t, err, ErrRemoveFailed)
	assert.Equal(t, 1, f.stub.CallsFor("docker", "rm", "-f", "a"))
	assert.Equal(t, 1, f.stub.CallsFor("docker", "rm", "-f", "b"))
}

func TestList(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubOK(callAncestor, "a\nb\n")
	f.stub.StubOK(callPS, "b\nunrelated\n")

	statuses, err := f.launcher.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []ContainerStatus{{Name: "a"}, {Name: "b", Running: true}}, statuses)
}

func TestList_QueryFailure(t *testing.T) {
	f := newFixture(t, true)
	f.stub.StubExit(callAncestor, 1)

	_, err := f.launcher.List(context.Background())

	assert.ErrorIs(t, err, ErrQueryFailed)
}
