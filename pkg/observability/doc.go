/*
Package observability turns runtime lifecycle events into logs and Prometheus metrics.

Both are exposed as domain.LifecycleHooks so hosts can merge them and pass the result to
arbor.WithLifecycleHooks.

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	rt := arbor.New(
		arbor.WithLifecycleHooks(observability.LoggingHooks(logger)),
		arbor.WithLifecycleHooks(metrics.Hooks()),
	)
*/
package observability
