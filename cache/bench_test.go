package cache

import (
	"fmt"
	"testing"
)

func BenchmarkLRU_Get(b *testing.B) {
	c := NewLRU(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("key-%d", i%DefaultCapacity))
	}
}

func BenchmarkLRU_SetWithEviction(b *testing.B) {
	c := NewLRU(128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
}

func BenchmarkLRU_ParallelMixed(b *testing.B) {
	c := NewLRU(DefaultCapacity)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("key-%d", i%2048)
			if i%4 == 0 {
				c.Set(key, i)
			} else {
				c.Get(key)
			}
			i++
		}
	})
}

func BenchmarkDefaultKeyer(b *testing.B) {
	k := NewDefaultKeyer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k.Key("2024-01-01", "2024-12-31", "NSW")
	}
}
