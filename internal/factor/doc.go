// Package factor provides number-theory routines over the bounded int32
// domain: factor enumeration, common factors, greatest common factor, least
// common multiple, integer square roots, and parity/primality predicates.
//
// All algorithms use trial division and terminate in time proportional to the
// magnitude of their inputs. That is acceptable only because the domain is
// bounded; callers needing latency guarantees should wrap calls in their own
// timeout.
package factor
