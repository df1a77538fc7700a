// Package params defines the per-operation parameter bundles for the
// LlamaEdge client.
//
// Each bundle is a plain configuration struct with a Default* constructor
// that fills in the documented default for every field. A default bundle is
// always a valid, safe call. Bundles are consumed once per call and never
// mutated by the client. No field is range-validated here; out-of-range
// values pass through to the server, which rejects them.
package params
