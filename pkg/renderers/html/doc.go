// Package html renders the registration page server-side with pongo2 and
// adapts a posted form to the orchestrator View port.
package html
