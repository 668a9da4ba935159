// Package endian provides byte order utilities for binary decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, and by probing the host byte order once at startup. The probe
// decides whether multi-byte payloads can alias the wire buffer directly
// (little-endian hosts) or must be byte-swapped on decode (big-endian
// hosts); all multi-byte values on the wire are little-endian.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeOrder is probed once; the host byte order cannot change at runtime.
var nativeOrder = CheckEndianness()

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the cached host byte order.
func Native() binary.ByteOrder {
	return nativeOrder
}

// IsNativeLittleEndian reports whether the host stores integers
// least-significant byte first.
func IsNativeLittleEndian() bool {
	return nativeOrder == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers
// most-significant byte first.
func IsNativeBigEndian() bool {
	return nativeOrder == binary.BigEndian
}

// LittleEndian returns the little-endian engine, the byte order used by
// every multi-byte payload on the wire.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine.
func BigEndian() EndianEngine {
	return binary.BigEndian
}
