// Package order contains the order aggregate and its owned value objects.
//
// An Order owns exactly one Address and an ordered collection of OrderLines;
// neither can outlive the order. Subtotal and total are derived from the
// order lines plus tax and shipping and are recomputed on every
// rehydration — they are never persisted, so they cannot drift from the
// stored line data.
//
// All types are created through constructor functions that enforce the
// field constraints; zero-value instances fail Validate.
package order
