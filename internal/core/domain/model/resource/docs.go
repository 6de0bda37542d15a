// Package resource models the drivers and vehicles that the coordinator
// allocates to service requests.
//
// The package includes:
//   - Kind: driver or vehicle, with the availability states each kind uses
//   - Status: the stored availability literal of a resource
//   - Driver and Vehicle: the resource entities
//
// Each kind has three states: available, a reserved state entered when an
// assignment claims the resource (assigned for drivers, in_use for vehicles),
// and a manual state set by administrators (off_duty, maintenance). Allocation
// cascades never override a manual state.
package resource
