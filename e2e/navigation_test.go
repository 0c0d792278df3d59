//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadyAndFirstPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")

	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("recsel"), "Should show recsel title")
	require.True(t, tf.SeePlain("Sample record 0001"), "Should show the first record")
	require.True(t, tf.SeePlain("Page 1/3"), "Should show the page summary")
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	initialOutput := tf.Snapshot()

	tf.Down()

	// Wait for navigation to take effect (output should change)
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")

	// Moving up past the first record must not break anything
	tf.SendKeys(KeyUp)
	tf.SendKeys(KeyUp)
	require.True(t, tf.SeePlain("Sample record 0001"), "First record should still be visible")
	require.True(t, tf.SeePlain("Page 1/3"), "Cursor bounds must not change the page")
}

func TestPageNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyNextPage)
	require.True(t, tf.SeePlain("Page 2/3"), "Should move to page 2")
	require.True(t, tf.SeePlain("Sample record 0011"), "Page 2 starts at record 11")

	tf.SendKeys(KeyNextPage)
	require.True(t, tf.SeePlain("Page 3/3"), "Should move to page 3")
	require.True(t, tf.SeePlain("Sample record 0021"), "Page 3 starts at record 21")

	// The last page is short and stepping past it is ignored
	tf.SendKeys(KeyNextPage)
	time.Sleep(300 * time.Millisecond)
	require.True(t, tf.SeePlain("Page 3/3"), "Stepping past the last page should do nothing")

	tf.SendKeys(KeyPrevPage)
	require.True(t, tf.SeePlain("Page 2/3"), "Should move back to page 2")
}
