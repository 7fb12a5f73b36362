// Package formapi talks to the remote form endpoint: one GET that lists the
// valid occupations and states, and one POST that registers a FormRecord.
//
// The wire contract is kept as an embedded OpenAPI document (contract.yaml)
// and loaded with kin-openapi. Upstream payloads are decoded by explicit key
// ("occupations", "states"); a missing key, a value of the wrong type or an
// entry the option normalizer cannot map is reported as ErrMalformedUpstream.
//
// Every request runs under a timeout (10s by default) even when the caller's
// context has no deadline. Transport failures and timeouts wrap ErrNetwork.
package formapi
