// Package purchaseorder contains the PurchaseOrder aggregate, the sole entity
// of the procurement workflow, together with its Status state machine.
//
// The aggregate owns every status mutation. Each transition method first checks
// that the caller is the party the operation requires, then that the current
// status matches the transition's precondition; on any failure the aggregate is
// left untouched. Identity and credential fields are immutable after creation;
// only status and the fulfilled-at timestamp ever change, and only forward
// along the transition graph:
//
//	Created ──> Accepted ──> Fulfilled ──> Paid
//	   │
//	   └──> Cancelled
//
// Paid and Cancelled are terminal. Disputed is declared in the status set but
// no transition reaches or leaves it; it is reserved in the wire-visible
// enumeration for a future dispute workflow.
package purchaseorder
