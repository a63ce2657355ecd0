// Package resilience groups the fault tolerance helpers used around chart
// computation and the chart store.
//
//   - circuitbreaker: gobreaker wrappers for the ephemeris provider and the store
//   - retry: exponential backoff with jitter for transient store errors
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.EphemerisConfig())
//	chart, err := circuitbreaker.Do(cb, func() (*entity.Chart, error) {
//	    return calc.Compute(in)
//	})
//
//	err = retry.WithBackoff(ctx, retry.StoreConfig(), func() error {
//	    return repo.Save(ctx, rec)
//	})
package resilience
