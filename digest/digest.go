package digest

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"hash/crc32"
	"io"

	"github.com/sigurn/crc16"

	"github.com/jmgilman/scriptfile/errors"
)

// BlockSize is the number of bytes read per scan step.
const BlockSize = 4096

var xmodem = crc16.MakeTable(crc16.CRC16_XMODEM)

// Kind names a digest algorithm by its handle property name.
type Kind string

const (
	KindSum       Kind = "chksum"
	KindCRC16     Kind = "crc16"
	KindCRC32     Kind = "crc32"
	KindMD5Hex    Kind = "md5_hex"
	KindMD5Base64 Kind = "md5_base64"
)

// Kinds lists every supported digest in property order.
var Kinds = []Kind{KindCRC16, KindCRC32, KindSum, KindMD5Hex, KindMD5Base64}

// Numeric reports whether the digest yields a number rather than text.
func (k Kind) Numeric() bool {
	return k == KindSum || k == KindCRC16 || k == KindCRC32
}

// Result holds a computed digest. Numeric kinds set Number; the MD5 kinds
// set Text.
type Result struct {
	Kind   Kind
	Number uint64
	Text   string
}

// Compute runs the digest named by kind over rs.
func Compute(rs io.ReadSeeker, kind Kind) (Result, error) {
	res := Result{Kind: kind}
	var err error
	switch kind {
	case KindSum:
		res.Number, err = Sum(rs)
	case KindCRC16:
		var v uint16
		v, err = CRC16(rs)
		res.Number = uint64(v)
	case KindCRC32:
		var v uint32
		v, err = CRC32(rs)
		res.Number = uint64(v)
	case KindMD5Hex:
		res.Text, err = MD5Hex(rs)
	case KindMD5Base64:
		res.Text, err = MD5Base64(rs)
	default:
		return res, errors.Newf(errors.CodeInvalidInput, "unknown digest %q", string(kind))
	}
	return res, err
}

// Sum returns the unsigned sum of every byte in the stream.
func Sum(rs io.ReadSeeker) (uint64, error) {
	var sum uint64
	err := scan(rs, func(block []byte) {
		for _, b := range block {
			sum += uint64(b)
		}
	})
	return sum, err
}

// CRC16 returns the CRC-16/XMODEM (CCITT polynomial, zero initial value)
// of the stream.
func CRC16(rs io.ReadSeeker) (uint16, error) {
	crc := crc16.Init(xmodem)
	err := scan(rs, func(block []byte) {
		crc = crc16.Update(crc, block, xmodem)
	})
	return crc16.Complete(crc, xmodem), err
}

// CRC32 returns the reflected IEEE CRC-32 register of the stream, seeded
// with all ones and without the final complement. It is the bitwise NOT of
// the zip/PNG checksum; the empty stream yields 0xFFFFFFFF.
func CRC32(rs io.ReadSeeker) (uint32, error) {
	var crc uint32
	err := scan(rs, func(block []byte) {
		crc = crc32.Update(crc, crc32.IEEETable, block)
	})
	return ^crc, err
}

// MD5 returns the raw MD5 digest of the stream.
func MD5(rs io.ReadSeeker) ([md5.Size]byte, error) {
	var sum [md5.Size]byte
	h := md5.New()
	err := scan(rs, func(block []byte) {
		h.Write(block)
	})
	copy(sum[:], h.Sum(nil))
	return sum, err
}

// MD5Hex returns the MD5 digest as 32 lowercase hex digits.
func MD5Hex(rs io.ReadSeeker) (string, error) {
	sum, err := MD5(rs)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}

// MD5Base64 returns the MD5 digest in padded standard Base64.
func MD5Base64(rs io.ReadSeeker) (string, error) {
	sum, err := MD5(rs)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// scan feeds the stream to fn block by block, starting at offset zero, and
// restores the original position afterwards.
func scan(rs io.ReadSeeker, fn func([]byte)) (err error) {
	saved, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return errors.Wrap(err, errors.CodeUnsupported, "stream is not seekable")
	}
	defer func() {
		if _, serr := rs.Seek(saved, io.SeekStart); serr != nil && err == nil {
			err = errors.Wrap(serr, errors.CodeIO, "failed to restore position")
		}
	}()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to seek to start")
	}

	block := make([]byte, BlockSize)
	for {
		n, rerr := rs.Read(block)
		if n > 0 {
			fn(block[:n])
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return errors.Wrap(rerr, errors.CodeIO, "failed to read stream")
		}
	}
}
