package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_RerunsOnChange(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	resetFlags(RootCmd)

	input := writeBaskets(t)
	report := filepath.Join(t.TempDir(), "rules.txt")

	var stdout, stderr syncBuffer
	RootCmd.SetArgs([]string{"watch", "-i", input, "-o", report, "-c", "0.5", "--debounce", "50ms"})
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		RootCmd.SetArgs(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	})

	// Subcommands keep the context of their first run.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchCmd.SetContext(ctx)
	t.Cleanup(func() { watchCmd.SetContext(context.Background()) })

	done := make(chan error, 1)
	go func() { done <- RootCmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "Watching "+input)
	}, 3*time.Second, 20*time.Millisecond)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rule 4:")

	// Drop c from every row: only a=y ==> b=y and b=y ==> a=y remain.
	require.NoError(t, os.WriteFile(input, []byte("a,b,c\ny,y,\ny,y,\n,y,\n"), 0o644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(report)
		return err == nil && strings.Contains(string(data), "Rule 2:") && !strings.Contains(string(data), "Rule 3:")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	assert.Contains(t, stdout.String(), "Stopped watching.")
	assert.GreaterOrEqual(t, strings.Count(stdout.String(), "Updated "), 2)
}

func TestWatch_Validation(t *testing.T) {
	_, _, err := runCLI(t, "watch")
	require.Error(t, err)
}
