// Package cases provides an HTTP client for the case-study data endpoint.
//
// # Overview
//
// The landing page shows a gallery of completed implementation cases. The
// records come from a remote endpoint that is treated as an opaque data
// provider: a single unparameterized GET returning
//
//	{"cases": [{"id": 1, "title": "...", ...}, ...]}
//
// # Client Usage
//
//	client, err := cases.NewClient(cfg.CasesURL, cases.WithLogger(logger))
//	if err != nil {
//		return fmt.Errorf("init cases client: %w", err)
//	}
//	records, err := client.Fetch(ctx)
//
// # Request Handling
//
// Every request:
//   - Uses the context for cancellation
//   - Sets Accept: application/json and User-Agent: bureaucrat/0.1
//   - Carries a fresh X-Request-ID (uuid) so both sides can correlate logs
//   - Has a 5-second timeout unless WithTimeout says otherwise
//
// There is no retry, polling or caching. Callers issue exactly one fetch per
// page mount.
//
// # Decoding
//
// Decode is the typed parse step. Fields beyond the Record shape are
// ignored, and an absent or null "cases" field decodes to an empty slice.
// Malformed JSON, transport failures and non-2xx statuses are returned as
// wrapped errors; the fail-soft policy that turns them into an empty gallery
// lives in the state package, not here.
//
// Identifiers are expected to be unique per batch. DuplicateIDs reports
// violations for logging; records are never deduplicated.
package cases
