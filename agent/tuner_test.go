package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nstehr/striker/model"
	"github.com/nstehr/striker/rules"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTuner_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Default\n"), 0o644))

	engine, err := rules.NewEngine(rules.DefaultTuning())
	require.NoError(t, err)
	tuner, err := NewTuner(engine, path)
	require.NoError(t, err)
	tuner.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tuner.Start(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("name: Other\n"), 0o644))

	require.Eventually(t, func() bool {
		// The watcher may not be registered the instant Start runs; keep writing.
		_ = os.WriteFile(path, []byte("name: Wide\ntolerance_angle_deg: 30\n"), 0o644)
		select {
		case tn := <-tuner.Reloaded():
			return tn.Name == "Wide"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)

	require.Equal(t, "Wide", engine.Tuning().Name)
	d, _ := engine.Decide(model.Memory{}, model.Snapshot{
		Acc:         model.Vector3{Z: 9.81},
		BallVisible: true,
		Ball:        model.Polar{Alpha: 0.3, Norm: 2},
	})
	require.Equal(t, model.CommandWalkForward, d.Command)
}

func TestTuner_BadFileKeepsRules(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Default\n"), 0o644))

	engine, err := rules.NewEngine(rules.DefaultTuning())
	require.NoError(t, err)
	tuner, err := NewTuner(engine, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("tolerance_angle_deg: {\n"), 0o644))
	tuner.reload()
	require.Equal(t, "Default", engine.Tuning().Name)
	select {
	case tn := <-tuner.Reloaded():
		t.Fatalf("unexpected reload %+v", tn)
	default:
	}

	// Start closes the watcher; run it briefly so nothing leaks.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tuner.Start(ctx)
}

func TestNewTuner_MissingDirectory(t *testing.T) {
	engine, err := rules.NewEngine(rules.DefaultTuning())
	require.NoError(t, err)
	_, err = NewTuner(engine, filepath.Join(t.TempDir(), "nope", "tuning.yaml"))
	require.Error(t, err)
}
