//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitPrintsSelectedIDs(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Select()
	tf.Down()
	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlain("2 selected"), "Two records should be selected")

	tf.Quit()

	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err, "App should exit after q")
	require.Equal(t, 0, code, "Quit with a selection exits 0")

	// Give the pty reader a moment to drain the final output
	require.True(t, tf.OutputContainsPlain("3", 2*time.Second), "The selection should be printed")
	require.Equal(t, []string{"1", "3"}, tf.TrailingLines(2),
		"The ids come out one per line in selection order")
}

func TestEnterConfirmsSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Select()
	require.True(t, tf.SeePlain("1 selected"), "One record should be selected")

	tf.SendKeys(KeyEnter)

	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err, "App should exit after enter")
	require.Equal(t, 0, code, "Confirm exits 0")
	require.Equal(t, []string{"1"}, tf.TrailingLines(1), "The selected id should be printed")
}

func TestCtrlCAbortsWithoutOutput(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Select()
	require.True(t, tf.SeePlain("1 selected"), "One record should be selected")

	tf.SendKeys(KeyCtrlC)

	code, err := tf.WaitExit(5 * time.Second)
	require.NoError(t, err, "App should exit after ctrl+c")
	require.Equal(t, 1, code, "Abort exits 1 and prints nothing")
}
