// Package core contains channel plumbing shared by the collection helpers:
// turning values into channels of results and materializing channels or
// sequences back into ordered slices while honoring context cancellation.
package core
