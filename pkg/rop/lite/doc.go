// Package lite runs result stages over channels with a fixed number of
// worker lines.
//
// A Stage is a solo combinator bound to its continuation (see Then, Map,
// Ensure, Validate, Try, Tee). Run starts the workers; a stage may switch
// the value type. Output order follows completion, not input order, once
// more than one line is used.
package lite
