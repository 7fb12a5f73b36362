// Package validation implements the registration form's field rules.
//
// Validate is a pure function over a field kind and a raw string; it never
// touches a UI and never fails for kinds it does not know (those pass by
// default). ValidateAll runs every rule in form order and collects the verdicts
// into a Report so callers can surface all problems in one pass.
//
// Trimming policy: only the name rule trims its input. Email and password are
// checked against the raw value, so surrounding whitespace makes them invalid.
package validation
