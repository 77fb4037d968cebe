/*
Package observability provides registry middleware for monitoring validation.

Metrics counts validator runs in prometheus by type tag and outcome. Logging
writes a debug line for every validator on a failure path, so a failing run
produces a trace from the validator that rejected the value out to the root.

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	r := roentgen.New(registry.WithMiddleware(
		metrics.Middleware(),
		observability.Logging(logger),
	))
*/
package observability
