// Package model defines the types shared by the registration form pipeline:
// the closed set of field kinds, the raw values a UI hands over, the option
// pairs that populate the occupation and state choice controls, per-field
// verdicts and the FormRecord that is finally posted to the form endpoint.
//
// The types carry no behaviour beyond small accessors so they can travel
// between the validator, the option normalizer, the HTTP client and the UI
// adapters without import cycles.
package model
