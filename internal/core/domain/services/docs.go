// Package services holds the cascade rules that keep request, assignment,
// driver and vehicle statuses consistent. Each rule is a pure function of the
// statuses involved, so the coordinator applies them without branching on
// entity state itself.
//
// The package includes:
//   - StatusCascade: one transition function per entity pair
//     (assignment -> request, assignment -> resources, request -> assignment)
//     plus the request/active-assignment consistency check
package services
