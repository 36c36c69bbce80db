// Package scenario runs ordered lists of ledger submissions and balance
// probes. Every step is attempted even when earlier steps fail, and the
// outcome of each one is collected into a Report.
package scenario
