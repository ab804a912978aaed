// Package health serves liveness and readiness probes.
//
// LivenessHandler always answers 200. ReadinessHandler runs named checks
// concurrently under a shared timeout and answers 503 when one fails. Both
// reply in plain text with the overall status on the first line and one line
// per check, or in JSON when the client sends Accept: application/json or
// ?format=json. Responses are marked no-store.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"catalog": func(ctx context.Context) error { ... },
//	}, health.WithTimeout(2*time.Second)))
//
// A check that panics or outlives the timeout counts as failed.
package health
