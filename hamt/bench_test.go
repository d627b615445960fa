package hamt

import (
	"strconv"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = "bench-key-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkGoMap_Insert(b *testing.B) {
	keys := benchKeys(b.N)
	m := make(map[string]int, b.N)

	b.ResetTimer()

	for i, key := range keys {
		m[key] = i
	}
}

func BenchmarkHAMT_Insert(b *testing.B) {
	keys := benchKeys(b.N)
	tr := New[string, int](NewStringHasher())

	b.ResetTimer()

	for i, key := range keys {
		_ = tr.Insert(key, i)
	}
}

func BenchmarkHAMT_Get(b *testing.B) {
	keys := benchKeys(b.N)
	tr := New[string, int](NewStringHasher())
	for i, key := range keys {
		_ = tr.Insert(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Get(key)
	}
}

func BenchmarkHAMT_Remove(b *testing.B) {
	keys := benchKeys(b.N)
	tr := New[string, int](NewStringHasher())
	for i, key := range keys {
		_ = tr.Insert(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		tr.Remove(key)
	}
}
