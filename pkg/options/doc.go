// Package options turns the heterogeneous lists returned by the form endpoint
// into ordered value/label pairs for choice controls.
//
// An entry is either a plain string or a record carrying a string "name". Any
// other shape is an upstream contract violation and Normalize fails with a
// *MalformedEntryError instead of emitting an empty option.
package options
