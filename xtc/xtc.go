/*
Package xtc decompresses GROMACS XTC trajectories: a sequence of frames,
each holding a box matrix and a coordinate block that is either plain XDR
floats (natoms <= 9) or a run-length/delta-coded, variable-precision
bitstream (the "3dfcoord" scheme from the xdrfile library).

This is a direct port of xdrfile's decompression algorithm (Erik Lindahl &
David van der Spoel). The bit-level quirks here — the independent-axis
fallback, the smallidx window walk, and especially the first-iteration
coordinate swap in the small-coordinate run — are load-bearing: get any of
them wrong and every frame after the first run is misaligned.
*/
package xtc

import (
	"fmt"

	"github.com/hodakamori/megane"
	"github.com/hodakamori/megane/bitio"
	"github.com/hodakamori/megane/xdr"
)

const xtcMagic = 1995

// Parse decompresses a complete XTC byte buffer into an XtcData. Frames are
// read sequentially until fewer than 16 bytes remain; such a short tail is
// silently dropped rather than treated as an error. A truncated frame with
// 16 or more bytes left, and any other mid-stream problem (bad magic, a
// changed atom count, a malformed compressed block), is fatal.
func Parse(data []byte) (*megane.XtcData, error) {
	r := xdr.NewReader(data)

	var framePositions [][]float32
	var nAtoms int
	var firstTime, secondTime float32
	var lastBox []float32

	for r.Remaining() >= 16 {
		magic, err := r.ReadI32()
		if err != nil {
			break
		}
		if magic != xtcMagic {
			return nil, fmt.Errorf("xtc: bad magic %d (expected %d)", magic, xtcMagic)
		}

		frameNAtoms32, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("xtc: %w", err)
		}
		frameNAtoms := int(frameNAtoms32)
		if frameNAtoms <= 0 {
			return nil, fmt.Errorf("xtc: zero or negative atom count in frame")
		}
		if nAtoms == 0 {
			nAtoms = frameNAtoms
		} else if frameNAtoms != nAtoms {
			return nil, fmt.Errorf("xtc: inconsistent atom count %d vs %d", frameNAtoms, nAtoms)
		}

		if _, err := r.ReadI32(); err != nil { // step, unused
			return nil, fmt.Errorf("xtc: %w", err)
		}
		time, err := r.ReadF32()
		if err != nil {
			return nil, fmt.Errorf("xtc: %w", err)
		}

		switch len(framePositions) {
		case 0:
			firstTime = time
		case 1:
			secondTime = time
		}

		box := make([]float32, 9)
		for i := range box {
			v, err := r.ReadF32()
			if err != nil {
				return nil, fmt.Errorf("xtc: reading box: %w", err)
			}
			box[i] = v * 10 // nm -> Angstrom
		}
		lastBox = box

		positions, err := decompressCoords(r, nAtoms)
		if err != nil {
			return nil, err
		}
		framePositions = append(framePositions, positions)
	}

	if len(framePositions) == 0 {
		return nil, fmt.Errorf("xtc: no frames found in file")
	}

	timestepPs := float32(1.0)
	if len(framePositions) > 1 {
		timestepPs = secondTime - firstTime
	}

	return &megane.XtcData{
		NAtoms:         nAtoms,
		NFrames:        len(framePositions),
		TimestepPs:     timestepPs,
		BoxMatrix:      lastBox,
		FramePositions: framePositions,
	}, nil
}

func decompressCoords(r *xdr.Reader, natoms int) ([]float32, error) {
	lsize, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("xtc: %w", err)
	}
	if int(lsize) != natoms {
		return nil, fmt.Errorf("xtc: coordinate block size %d != natoms %d", lsize, natoms)
	}

	size3 := natoms * 3

	if natoms <= 9 {
		out := make([]float32, 0, size3)
		for i := 0; i < size3; i++ {
			v, err := r.ReadF32()
			if err != nil {
				return nil, fmt.Errorf("xtc: %w", err)
			}
			out = append(out, v*10)
		}
		return out, nil
	}

	precision, err := r.ReadF32()
	if err != nil {
		return nil, fmt.Errorf("xtc: %w", err)
	}
	if precision == 0 {
		return nil, fmt.Errorf("xtc: zero precision")
	}
	invPrecision := 1.0 / precision

	var minint, maxint [3]int32
	for i := range minint {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("xtc: %w", err)
		}
		minint[i] = v
	}
	for i := range maxint {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("xtc: %w", err)
		}
		maxint[i] = v
	}

	var sizeint [3]uint32
	for i := 0; i < 3; i++ {
		sizeint[i] = uint32(maxint[i] - minint[i] + 1)
	}

	var bitsizeint [3]uint32
	var bitsize uint32
	if (sizeint[0] | sizeint[1] | sizeint[2]) > 0x00FFFFFF {
		bitsizeint[0] = bitio.SizeOfInt(sizeint[0])
		bitsizeint[1] = bitio.SizeOfInt(sizeint[1])
		bitsizeint[2] = bitio.SizeOfInt(sizeint[2])
		bitsize = 0
	} else {
		bitsize = bitio.SizeOfInts(3, sizeint[:])
	}

	smallidxVal, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("xtc: %w", err)
	}
	smallidx := int(smallidxVal)
	if smallidx < 0 || smallidx >= len(magicInts) {
		return nil, fmt.Errorf("xtc: invalid smallidx %d", smallidx)
	}

	tmpIdx := smallidx - 1
	if tmpIdx < 0 {
		tmpIdx = 0
	}
	if tmpIdx < firstIdx {
		tmpIdx = firstIdx
	}
	smaller := magicInts[tmpIdx] / 2
	smallnum := magicInts[smallidx] / 2
	sizesmall := [3]uint32{magicInts[smallidx], magicInts[smallidx], magicInts[smallidx]}

	nbytes, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("xtc: %w", err)
	}
	bitstream, err := r.ReadOpaque(int(nbytes))
	if err != nil {
		return nil, fmt.Errorf("xtc: %w", err)
	}

	bits := bitio.NewReader(bitstream)

	coords := make([]int32, size3)
	output := make([]float32, 0, size3)
	var prevcoord [3]int32

	i := 0
	for i < natoms {
		this := i * 3
		if bitsize == 0 {
			coords[this] = int32(bits.DecodeBits(bitsizeint[0]))
			coords[this+1] = int32(bits.DecodeBits(bitsizeint[1]))
			coords[this+2] = int32(bits.DecodeBits(bitsizeint[2]))
		} else {
			decoded := bits.DecodeInts(3, bitsize, sizeint[:])
			coords[this] = decoded[0]
			coords[this+1] = decoded[1]
			coords[this+2] = decoded[2]
		}
		i++

		coords[this] += minint[0]
		coords[this+1] += minint[1]
		coords[this+2] += minint[2]

		prevcoord[0] = coords[this]
		prevcoord[1] = coords[this+1]
		prevcoord[2] = coords[this+2]

		flag := bits.DecodeBits(1)
		var isSmaller int32
		run := 0
		if flag == 1 {
			runVal := int32(bits.DecodeBits(5))
			isSmaller = runVal % 3
			run = int(runVal - isSmaller)
			isSmaller--
		}

		if run > 0 {
			for k := 0; k < run; k += 3 {
				ri := i * 3
				decoded := bits.DecodeInts(3, uint32(smallidx), sizesmall[:])
				coords[ri] = decoded[0]
				coords[ri+1] = decoded[1]
				coords[ri+2] = decoded[2]
				i++

				coords[ri] += prevcoord[0] - int32(smallnum)
				coords[ri+1] += prevcoord[1] - int32(smallnum)
				coords[ri+2] += prevcoord[2] - int32(smallnum)

				if k == 0 {
					swap0, swap1, swap2 := coords[ri], coords[ri+1], coords[ri+2]
					coords[ri], coords[ri+1], coords[ri+2] = prevcoord[0], prevcoord[1], prevcoord[2]
					prevcoord[0], prevcoord[1], prevcoord[2] = swap0, swap1, swap2

					output = append(output,
						float32(prevcoord[0])*invPrecision,
						float32(prevcoord[1])*invPrecision,
						float32(prevcoord[2])*invPrecision)
				} else {
					prevcoord[0], prevcoord[1], prevcoord[2] = coords[ri], coords[ri+1], coords[ri+2]
				}
				output = append(output,
					float32(coords[ri])*invPrecision,
					float32(coords[ri+1])*invPrecision,
					float32(coords[ri+2])*invPrecision)
			}
		} else {
			output = append(output,
				float32(coords[this])*invPrecision,
				float32(coords[this+1])*invPrecision,
				float32(coords[this+2])*invPrecision)
		}

		smallidx += int(isSmaller)
		if isSmaller < 0 {
			smallnum = smaller
			if smallidx > firstIdx {
				smaller = magicInts[smallidx-1] / 2
			} else {
				smaller = 0
			}
		} else if isSmaller > 0 {
			smaller = smallnum
			smallnum = magicInts[smallidx] / 2
		}
		sizesmall = [3]uint32{magicInts[smallidx], magicInts[smallidx], magicInts[smallidx]}
		if sizesmall[0] == 0 {
			return nil, fmt.Errorf("xtc: invalid sizesmall window at smallidx %d", smallidx)
		}
	}

	for idx := range output {
		output[idx] *= 10 // nm -> Angstrom
	}

	return output, nil
}
