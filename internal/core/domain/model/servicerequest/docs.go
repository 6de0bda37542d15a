// Package servicerequest provides the ServiceRequest aggregate: a customer's
// request for a pickup and delivery, together with the lifecycle status that the
// allocation coordinator keeps consistent with the request's assignment.
//
// The package includes:
//   - ServiceRequest: the aggregate root holding customer contact and route details
//   - Details: the editable, non-status fields of a request
//   - Patch: a partial edit of Details
//   - Status: the request lifecycle (pending, assigned, in_progress, completed, cancelled)
//
// Key business rules:
//   - New requests always start in the pending status
//   - Customer name, email, phone, service type, both addresses and the preferred
//     date are required; special instructions are optional
//   - The status is never edited together with Details; status changes go
//     through the allocation coordinator
package servicerequest
