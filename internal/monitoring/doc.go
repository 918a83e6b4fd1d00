// Package monitoring provides Prometheus metrics collection.
//
// Metrics cover tree mutations (nodes added/removed, current size), backing
// record deletion by category, per-category population duration, and batch
// update spans. Attach a collector to a model through its options; without
// one the model records nothing.
package monitoring
