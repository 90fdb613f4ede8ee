package ecvrf

import (
	"crypto/sha512"
	"encoding/binary"
)

// SHA-512 parameters used by expand_message_xmd: b (output size) and r_in_bytes (block size).
const (
	sha512OutputBytes = 64
	sha512BlockSize   = 128
)

// expandMessageXMD implements expand_message_xmd (draft-irtf-cfrg-hash-to-curve §5.3.1) using
// SHA-512, producing a uniform byte string of the requested length from msg under the given
// domain separation tag. Used by encodeToCurve and, per spec, available generally even though
// only length 64 is exercised here.
func expandMessageXMD(msg, dst []byte, lengthInBytes int) ([]byte, error) {
	ell := (lengthInBytes + sha512OutputBytes - 1) / sha512OutputBytes
	if ell > 255 || lengthInBytes <= 0 {
		return nil, Error("ecvrf: expand_message_xmd length out of range")
	}
	if len(dst) > 255 {
		return nil, Error("ecvrf: expand_message_xmd DST too long")
	}

	dstPrime := make([]byte, 0, len(dst)+1)
	dstPrime = append(dstPrime, dst...)
	dstPrime = append(dstPrime, byte(len(dst)))

	zPad := make([]byte, sha512BlockSize)

	libStr := make([]byte, 2)
	binary.BigEndian.PutUint16(libStr, uint16(lengthInBytes))

	h := sha512.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0x00})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{0x01})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniformBytes := make([]byte, 0, ell*sha512OutputBytes)
	uniformBytes = append(uniformBytes, b1...)

	bPrev := b1
	for i := 2; i <= ell; i++ {
		xored := make([]byte, sha512OutputBytes)
		for j := range xored {
			xored[j] = b0[j] ^ bPrev[j]
		}

		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi := h.Sum(nil)

		uniformBytes = append(uniformBytes, bi...)
		bPrev = bi
	}

	return uniformBytes[:lengthInBytes], nil
}
