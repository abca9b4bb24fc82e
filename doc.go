// Package fourcc implements the four character code (FourCC) identifier: a
// four byte tag used by binary container formats (RIFF chunk IDs, codec and
// atom tags) to name the type of a block of data.
//
// A FourCC is an immutable four byte value. It is comparable with == and can
// be used directly as a map key. Integer conversions use big-endian byte
// order, so the value constructed from "RGBA" converts to 0x52474241; the
// explicit ...LE functions cover formats that do their FourCC math in
// little-endian order.
//
// The package defines the identifier type and its conversions only. Parsing
// of any container format that uses FourCC tags is left to consumers.
package fourcc
