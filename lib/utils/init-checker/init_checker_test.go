package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckInit(t *testing.T) {
	t.Run(`initialized check`, func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("value", 1, "func", func() {})
		})
	})

	t.Run(`nil check`, func(t *testing.T) {
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", nil)
		})
	})

	t.Run(`typed nil check`, func(t *testing.T) {
		var fn func()
		require.PanicsWithValue(t, "factory dependency not initialized", func() {
			CheckInit("factory", fn)
		})
		var ptr *int
		require.PanicsWithValue(t, "ptr dependency not initialized", func() {
			CheckInit("ptr", ptr)
		})
	})

	t.Run(`odd arguments check`, func(t *testing.T) {
		require.PanicsWithValue(t, "CheckInit: odd number of arguments", func() {
			CheckInit("store")
		})
	})
}
