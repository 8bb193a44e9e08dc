// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identifier type that shipments, drivers, and
// offers use as their primary key.
package kernel
