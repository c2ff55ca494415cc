// Package kernel contains the shared value objects of the domain model:
// validated identifiers, monetary amounts, and the actor/role pair that every
// workflow operation is performed as.
//
// All types in this package are immutable value objects. Their zero values
// are invalid; instances must be created through the provided constructors,
// which is enforced by constructor guards and Validate methods.
package kernel
