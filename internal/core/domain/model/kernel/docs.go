// Package kernel provides the domain primitives shared by every aggregate of the
// dispatch system.
//
// The package includes:
//   - ID: a value object for the positive integer identifiers of service requests,
//     drivers, vehicles and assignments
//
// ID is immutable and safe for concurrent use. Its zero value is invalid, which
// lets aggregates detect identifiers that were never assigned.
package kernel
