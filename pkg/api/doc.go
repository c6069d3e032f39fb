// Package api defines the wire messages of splitledger.v1.LedgerService.
//
// Messages are plain Go structs sent as JSON through Connect. 64-bit amounts
// are encoded as strings so that JavaScript clients do not lose precision.
package api
