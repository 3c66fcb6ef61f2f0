// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation built in, so aggregates and
// commands can rely on them being well formed once constructed.
package kernel
