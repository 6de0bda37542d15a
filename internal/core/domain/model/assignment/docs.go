// Package assignment provides the Assignment aggregate, which links one service
// request to one driver and one vehicle for a scheduled date, and the state
// machine its status follows.
//
// The package includes:
//   - Assignment: the aggregate root
//   - Status: the assignment lifecycle with its transition rules
//   - Transition: the from/to pair produced by a status change
//
// Key business rules:
//   - New assignments start scheduled
//   - scheduled and in_progress are active; only active assignments hold their
//     driver and vehicle
//   - completed and cancelled are terminal; nothing leaves them and a terminal
//     assignment cannot be rescheduled
package assignment
