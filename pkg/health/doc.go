// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel and answers
// 503 when any of them fails. The panel registers one check that pings the
// chatbot backend:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "backend": client.Ping,
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "backend": {"status": "unhealthy", "error": "health: check timeout"}
//	  }
//	}
package health
