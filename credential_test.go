package batchgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStore(t *testing.T) {
	t.Run("empty store has no usable credential", func(t *testing.T) {
		s := NewKeyStore("")
		assert.False(t, s.HasUsableCredential())
		assert.Empty(t, s.CurrentKey())
	})

	t.Run("selecting a key takes effect immediately", func(t *testing.T) {
		s := NewKeyStore("first-key")
		assert.True(t, s.HasUsableCredential())

		s.Select("second-key")
		assert.Equal(t, "second-key", s.CurrentKey())

		s.Select("")
		assert.False(t, s.HasUsableCredential())
	})

	t.Run("concurrent select and read", func(t *testing.T) {
		s := NewKeyStore("k")
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					s.Select("k")
					_ = s.CurrentKey()
					_ = s.HasUsableCredential()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, "k", s.CurrentKey())
	})
}
