package remedy

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string

	runErr     error
	bucketList string
	listErr    error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.runErr
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.bucketList, r.listErr
}

func commandLines(calls [][]string) []string {
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, strings.Join(c, " "))
	}
	return lines
}

func TestInstallScoop_RelaxesPolicyBeforeBootstrap(t *testing.T) {
	r := &fakeRunner{}

	require.NoError(t, InstallScoop(context.Background(), r))

	lines := commandLines(r.calls)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Set-ExecutionPolicy RemoteSigned -Scope CurrentUser")
	assert.Contains(t, lines[1], "irm https://get.scoop.sh | iex")
}

func TestInstallRedist_SkipsExistingBucket(t *testing.T) {
	r := &fakeRunner{bucketList: "main\nextras\n"}

	require.NoError(t, InstallRedist(context.Background(), r))

	lines := commandLines(r.calls)
	assert.Equal(t, []string{
		"scoop bucket list",
		"scoop install extras/vcredist2022",
	}, lines)
}

func TestInstallRedist_AddsMissingBucket(t *testing.T) {
	r := &fakeRunner{bucketList: "main\n"}

	require.NoError(t, InstallRedist(context.Background(), r))

	lines := commandLines(r.calls)
	assert.Equal(t, []string{
		"scoop bucket list",
		"scoop bucket add extras",
		"scoop install extras/vcredist2022",
	}, lines)
}

func TestInstallRedist_AddsBucketWhenListingFails(t *testing.T) {
	r := &fakeRunner{listErr: errors.New("scoop broken")}

	require.NoError(t, InstallRedist(context.Background(), r))

	lines := commandLines(r.calls)
	assert.Contains(t, lines, "scoop bucket add extras")
}

func TestInstallGit_PropagatesFailure(t *testing.T) {
	r := &fakeRunner{runErr: errors.New("exit status 1")}

	err := InstallGit(context.Background(), r)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to install git")
}
