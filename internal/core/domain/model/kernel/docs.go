// Package kernel contains the shared value objects of the procurement domain:
// order identifiers, party identities and fixed-point monetary amounts.
//
// All kernel types are immutable value objects. They validate their own
// construction and are safe to copy and to use concurrently.
package kernel
