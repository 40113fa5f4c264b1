// Package resilience provides fault isolation for calls leaving the process.
//
// Object storage uploads and deletes run through a circuit breaker so that an
// unavailable storage endpoint fails fast instead of holding request
// goroutines. Nothing is retried.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.ObjectStorageConfig())
//	out, err := circuitbreaker.Run(cb, func() (*s3.PutObjectOutput, error) {
//	    return client.PutObject(ctx, input)
//	})
package resilience
