// Package encoding implements the transform decoders and the pipeline
// driver that reconstruct typed columns from their encoded byte payloads.
//
// Every column payload is produced by stacking invertible transforms on a
// typed sequence and finishing with a byte-array serialization. The stack
// is persisted in application (encode) order, so decoding walks it in
// reverse: the raw bytes are reinterpreted into a typed sequence first,
// then each remaining transform is inverted in turn.
//
// # Transforms
//
//   - ByteArray: little-endian bytes → fixed-width typed sequence (always
//     the bottom of the stack)
//   - FixedPoint: scaled Int32 sequence → floating-point sequence
//   - IntervalQuantization: quantized Int32 sequence → floating-point
//     sequence over a closed interval
//   - RunLength: (value, length) pairs → flat integer sequence
//   - Delta: difference sequence → cumulative integer sequence
//   - IntegerPacking: narrow integers with saturation continuations →
//     Int32 sequence
//   - StringArray: index sequence + shared character pool → string
//     sequence
//
// All decoders are pure functions over immutable inputs and never retain
// references to scratch state, so decoded sequences can be shared across
// goroutines without synchronization. Some decoders allocate scratch space
// besides the output they return: Delta first copies its input into a
// 64-bit sequence, StringArray keeps a per-decode interning map, and the
// pipeline copies a narrow integer sequence when widening it to Int32.
//
// # Typed Sequences
//
// Decoded sequences travel as `any` holding one of the concrete slice
// types []int8, []int16, []int32, []uint8, []uint16, []uint32, []float32,
// []float64, or *StringSequence for string columns. On little-endian hosts
// the byte-array reinterpretation aliases the wire buffer directly with no
// copy; the typed view therefore shares the raw buffer's lifetime.
//
// # Errors
//
// Failures are classified by the sentinels in the errs package:
// errs.ErrUnsupportedType for unknown type codes, errs.ErrMalformedEncoding
// for structural violations, and errs.ErrUnknownEncodingKind for
// unrecognized descriptors. The pipeline adds no retry or recovery.
package encoding
