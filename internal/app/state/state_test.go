package state

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitFormatsBannerAndCount(t *testing.T) {
	s := New("I'm good. You've already asked me", nil)

	assert.Equal(t, "I'm good. You've already asked me 1 times", s.Visit())
	assert.Equal(t, "I'm good. You've already asked me 2 times", s.Visit())
	assert.Equal(t, uint64(2), s.VisitCount())
}

func TestVisitIsSafeForConcurrentUse(t *testing.T) {
	s := New("banner", nil)

	const goroutines = 50
	const visitsEach = 20

	var wg sync.WaitGroup
	seen := make(chan string, goroutines*visitsEach)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < visitsEach; j++ {
				seen <- s.Visit()
			}
		}()
	}
	wg.Wait()
	close(seen)

	require.Equal(t, uint64(goroutines*visitsEach), s.VisitCount())

	// Every formatted response carries a distinct count.
	counts := make(map[string]bool)
	for msg := range seen {
		require.True(t, strings.HasPrefix(msg, "banner "))
		assert.False(t, counts[msg], fmt.Sprintf("duplicate response %q", msg))
		counts[msg] = true
	}
}
