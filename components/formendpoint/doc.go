// Package formendpoint serves a local stand-in for the public registration
// form endpoint: GET and HEAD return the occupation and state lists, POST
// accepts a registration record and answers 201 or 400.
//
// Posted bodies are checked against the OpenAPI contract from pkg/formapi
// before the record rules run, and the same document is served at
// <route>/openapi.yaml. The default lists are loaded from the embedded
// data/form.json document.
package formendpoint
