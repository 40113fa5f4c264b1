package pathutil

import "testing"

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/doctors/0b7c6f9e-3b1f-4f1e-9a55-0e7b3f5c2d11",
		"/files/all",
		"/medical-records?page=2",
		"/health",
		"/unknown/path/123",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizePath(paths[i%len(paths)])
	}
}
