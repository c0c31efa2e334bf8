// Package digest computes whole-stream integrity values over a seekable
// stream: a byte sum, CRC-16/XMODEM, CRC-32/IEEE and MD5.
//
// Every function scans from offset zero in fixed-size blocks and restores
// the stream's position before returning, so callers can compute a digest
// in the middle of sequential I/O without losing their place.
package digest
