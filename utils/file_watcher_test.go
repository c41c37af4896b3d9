package utils

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewFileWatcher(t *testing.T) {
	dir, err := ioutil.TempDir("", "watcher")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filePath := path.Join(dir, "plan.yaml")

	var changed = make(chan struct{}, 16)
	watcher, err := NewFileWatcher(filePath, 0, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, ioutil.WriteFile(filePath, []byte("patterns: []\n"), 0600))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}
