package clock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonotonic(t *testing.T) {
	versioner := NewMonotonic()

	require.NotNil(t, versioner)
	assert.Positive(t, versioner.Next(0), "Next should return a positive version")
}

func TestMonotonic_Next_AdvancesWallClock(t *testing.T) {
	now := int64(1000)
	versioner := NewMonotonicWithNow(func() int64 { return now })

	v1 := versioner.Next(0)
	assert.Equal(t, int64(1000), v1, "First version should equal wall clock")

	now = 2000
	v2 := versioner.Next(v1)
	assert.Equal(t, int64(2000), v2, "Version should follow wall clock when it is ahead")
}

func TestMonotonic_Next_SameTick(t *testing.T) {
	// Часы "застряли" на одном значении — версии всё равно растут
	versioner := NewMonotonicWithNow(func() int64 { return 1000 })

	prev := int64(0)
	for i := 0; i < 10; i++ {
		current := versioner.Next(prev)
		assert.Greater(t, current, prev, "Next should always increase")
		prev = current
	}
	assert.Equal(t, int64(1009), prev)
}

func TestMonotonic_Next_ClockSkew(t *testing.T) {
	now := int64(5000)
	versioner := NewMonotonicWithNow(func() int64 { return now })

	v1 := versioner.Next(0)
	require.Equal(t, int64(5000), v1)

	// Часы прыгнули назад — версия продолжает расти от prev
	now = 100
	v2 := versioner.Next(v1)
	assert.Equal(t, int64(5001), v2, "Version must not regress under clock skew")
}

func TestMonotonic_Next_NeverRepeatsAcrossEntities(t *testing.T) {
	// Две сущности с отстающим prev не должны получить одинаковые версии
	versioner := NewMonotonicWithNow(func() int64 { return 1000 })

	v1 := versioner.Next(0)
	v2 := versioner.Next(0)
	assert.Greater(t, v2, v1, "Versioner must not reuse a version for another entity")
}

func TestMonotonic_Next_Concurrent(t *testing.T) {
	versioner := NewMonotonicWithNow(func() int64 { return 1 })

	const goroutines = 50
	results := make(chan int64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- versioner.Next(0)
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for v := range results {
		assert.False(t, seen[v], "Duplicate version issued: %d", v)
		seen[v] = true
	}
}
