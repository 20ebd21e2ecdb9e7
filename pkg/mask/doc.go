// Package mask implements the 8-lane vector mask contract from spec §9: "the
// mask type is an 8-lane bit mask; operations are AND, OR, AND-NOT,
// all-zero?, all-ones?, any-set?. Implementations may back it with a
// 256-bit SIMD register of 32-bit lanes or an 8-bit scalar — callers only
// observe the logical mask contract."
//
// Go has no portable SIMD intrinsics in the standard library, and none of
// the reference repos this module was built from reach for a SIMD package,
// so this implementation takes the explicitly sanctioned scalar form: a
// mask is a uint8 with one bit per lane. The filter and verify packages
// never look past this contract, so swapping in a real SIMD backend later
// is a one-package change.
package mask
