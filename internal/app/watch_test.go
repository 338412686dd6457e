package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchShaders(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan string, 2)
	done, err := watchShaders(ctx, dir, out)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phong.frag"), []byte("#version 410 core\n"), 0o644))
	select {
	case name := <-out:
		assert.Equal(t, "phong", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload request for phong.frag")
	}

	// nobody drains out from here on; the watcher must keep going
fill:
	for {
		select {
		case out <- "queued":
		default:
			break fill
		}
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "gouraud.vert"), []byte("void main(){}\n"), 0o644))
	}
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, out, cap(out))

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchShadersMissingDir(t *testing.T) {
	_, err := watchShaders(context.Background(), filepath.Join(t.TempDir(), "nope"), make(chan string, 1))
	assert.Error(t, err)
}
