package plugin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/installhook/internal/domain"
)

func TestRegister(t *testing.T) {
	p := New("install-trunk", "")

	require.NoError(t, p.Register(domain.EventPreBuild, func(context.Context, *domain.LifecycleInput) error { return nil }))

	assert.True(t, p.Handles(domain.EventPreBuild))
	assert.False(t, p.Handles(domain.EventBuild))
}

func TestRegister_Duplicate(t *testing.T) {
	p := New("install-trunk", "")
	noop := func(context.Context, *domain.LifecycleInput) error { return nil }

	require.NoError(t, p.Register(domain.EventPreBuild, noop))
	assert.Error(t, p.Register(domain.EventPreBuild, noop))
}

func TestRegister_Invalid(t *testing.T) {
	p := New("install-trunk", "")

	assert.Error(t, p.Register(domain.Event("onDeploy"), func(context.Context, *domain.LifecycleInput) error { return nil }))
	assert.Error(t, p.Register(domain.EventPreBuild, nil))
}

func TestEvents_LifecycleOrder(t *testing.T) {
	p := New("install-trunk", "")
	noop := func(context.Context, *domain.LifecycleInput) error { return nil }

	require.NoError(t, p.Register(domain.EventEnd, noop))
	require.NoError(t, p.Register(domain.EventPreBuild, noop))
	require.NoError(t, p.Register(domain.EventPostBuild, noop))

	assert.Equal(t, []domain.Event{domain.EventPreBuild, domain.EventPostBuild, domain.EventEnd}, p.Events())
}

func TestDispatch(t *testing.T) {
	p := New("install-trunk", "")
	calls := 0
	require.NoError(t, p.Register(domain.EventPreBuild, func(ctx context.Context, in *domain.LifecycleInput) error {
		calls++
		assert.Equal(t, domain.EventPreBuild, in.Event)
		return nil
	}))

	input := &domain.LifecycleInput{Event: domain.EventPreBuild}
	require.NoError(t, p.Dispatch(context.Background(), input))
	require.NoError(t, p.Dispatch(context.Background(), input))

	assert.Equal(t, 2, calls, "each dispatch runs the handler once")
}

func TestDispatch_UnhandledEvent(t *testing.T) {
	p := New("install-trunk", "")
	require.NoError(t, p.Register(domain.EventPreBuild, func(context.Context, *domain.LifecycleInput) error {
		t.Fatal("onPreBuild handler must not run for onBuild")
		return nil
	}))

	assert.NoError(t, p.Dispatch(context.Background(), &domain.LifecycleInput{Event: domain.EventBuild}))
}

func TestDispatch_PropagatesError(t *testing.T) {
	p := New("install-trunk", "")
	require.NoError(t, p.Register(domain.EventPreBuild, func(context.Context, *domain.LifecycleInput) error {
		return &domain.InstallError{Tool: "trunk", Args: []string{"cargo", "install", "trunk"}, ExitCode: 101, Err: errors.New("exit status 101")}
	}))

	err := p.Dispatch(context.Background(), &domain.LifecycleInput{Event: domain.EventPreBuild})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallerFailed)
	assert.Contains(t, err.Error(), "install-trunk onPreBuild")
}

func TestDispatch_NilInput(t *testing.T) {
	p := New("install-trunk", "")
	assert.Error(t, p.Dispatch(context.Background(), nil))
}

func TestManifest_RoundTrip(t *testing.T) {
	p := New("install-trunk", "Install Trunk before the build")
	require.NoError(t, p.Register(domain.EventPreBuild, func(context.Context, *domain.LifecycleInput) error { return nil }))

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, p.Manifest()))
	assert.Contains(t, buf.String(), "name: install-trunk")

	path := filepath.Join(t.TempDir(), "manifest.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "install-trunk", m.Name)
	assert.Equal(t, "Install Trunk before the build", m.Description)
	assert.Equal(t, []string{"onPreBuild"}, m.Events)
}

func TestLoadManifest_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yml")
	require.NoError(t, os.WriteFile(path, []byte("description: no name\n"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
