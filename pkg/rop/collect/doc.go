// Package collect merges collections of results. Every helper materializes
// its input into an ordered slice first and then applies the all-or-nothing
// policy of rop.Merge / rop.MergeOutcomes, so value and error order always
// follows input order.
package collect
