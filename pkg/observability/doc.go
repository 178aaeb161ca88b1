/*
Package observability turns dispatch hooks into logs, metrics and traces.

Every constructor returns a dispatch.Hooks value; combine them with MergeHooks
and pass the result to the engine:

	metrics, _ := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.MergeHooks(
		observability.LoggingHooks(logger),
		metrics.Hooks(),
		observability.TracingHooks(otel.Tracer("cascade")),
	)

Hooks run synchronously inside the dispatch loop, so none of them block.
*/
package observability
