// Package kernel provides core domain primitives for the freight system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - EntityID: a store-assigned identity value object (zero means not yet persisted)
//   - IDSet: an identity-keyed set with idempotent membership operations
//   - Weight: an exact decimal weight that round-trips without precision loss
//   - ShipDate: a calendar date with no time-of-day component
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable (IDSet excepted) and safe to copy.
package kernel
