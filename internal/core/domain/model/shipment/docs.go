// Package shipment contains the Shipment aggregate: a transportable job with
// a capacity requirement, seeking exactly one driver.
//
// A shipment starts unaccepted. It becomes accepted exactly once, when one of
// its offers wins the acceptance race; that transition is performed by a
// conditional single-row update in the persistence layer, not by a method on
// the aggregate, because the database's compare-and-swap semantics are the
// concurrency-control primitive of the whole protocol.
package shipment
