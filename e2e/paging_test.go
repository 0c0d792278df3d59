//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCyclePageSize(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(50)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("10/page"), "Default page size is 10")
	require.True(t, tf.SeePlain("Page 1/5"), "50 records at size 10 is 5 pages")

	tf.SendKeys(KeyCycleSize)
	require.True(t, tf.SeePlain("20/page"), "s should cycle the page size to 20")
	require.True(t, tf.SeePlain("Page 1/3"), "50 records at size 20 is 3 pages")
	require.True(t, tf.SeePlain("Sample record 0020"), "The larger page shows more records")

	tf.SendKeys(KeyCycleSize)
	require.True(t, tf.SeePlain("5/page"), "s should cycle the page size to 5")
	require.True(t, tf.SeePlain("Page 1/10"), "50 records at size 5 is 10 pages")
}

func TestGoToPagePrompt(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	baseURL, err := tf.StartServer(25)
	require.NoError(t, err, "Failed to start catalog server")
	require.NoError(t, tf.StartBrowse(baseURL), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyGoTo)
	require.True(t, tf.SeePlain("Page:"), "Colon should open the page prompt")

	tf.SendKeys("3")
	tf.SendKeys(KeyEnter)
	require.True(t, tf.SeePlain("Page 3/3"), "Should jump to page 3")
	require.True(t, tf.SeePlain("Sample record 0021"), "Page 3 starts at record 21")

	// Out of range input is dropped without complaint
	tf.SendKeys(KeyGoTo)
	require.True(t, tf.SeePlain("Page:"), "Colon should open the page prompt again")
	tf.SendKeys("9")
	tf.SendKeys(KeyEnter)
	time.Sleep(300 * time.Millisecond)
	require.True(t, tf.SeePlain("Page 3/3"), "An out-of-range page must leave the view alone")
}
