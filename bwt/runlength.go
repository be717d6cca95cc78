// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// RunLengthEncode compresses a BWT string (as dense alphabet indices,
// including the sentinel) into a Huffman code table and a run-length
// body, per §4.4. It returns the serialized table, the serialized body,
// and the number of distinct symbols, matching the wire layout in §6:
//
//	Table(U) := for i in 1..=U: [7 bits ASCII] · γ(codeLen) · codeword
//	Body     := for each run (k, c): γ(k) · codeword(c)
func RunLengthEncode(bwt []int) (table, body *BitStream, numUnique int, err error) {
	freq := make([]int, alphabetSize)
	for _, idx := range bwt {
		freq[idx]++
	}
	cb, err := BuildCodebook(freq)
	if err != nil {
		return nil, nil, 0, err
	}
	symbols := cb.Symbols()
	numUnique = len(symbols)

	body = NewBitStream()
	accum := uint64(1)
	prevSymbol := bwt[0]
	for i := 1; i < len(bwt); i++ {
		c := bwt[i]
		if c == prevSymbol {
			accum++
			continue
		}
		body.Extend(EliasEncode(accum))
		body.Extend(cb.Code(prevSymbol))
		accum = 1
		prevSymbol = c
	}
	body.Extend(EliasEncode(accum))
	body.Extend(cb.Code(prevSymbol))

	table = NewBitStream()
	for _, idx := range symbols {
		code := cb.Code(idx)
		asciiVal := tableASCII(idx)
		for i := 6; i >= 0; i-- {
			table.PushBit(uint((asciiVal >> uint(i)) & 1))
		}
		table.Extend(EliasEncode(uint64(code.Len())))
		table.Extend(code)
	}

	return table, body, numUnique, nil
}

// DecodeTable parses numUnique (ascii, codeLen, codeword) entries from the
// front of data, returning the recovered codebook and the unconsumed
// remainder.
func DecodeTable(data *BitStream, numUnique int) (map[int]*BitStream, *BitStream, error) {
	codes := make(map[int]*BitStream, numUnique)
	remainder := data

	for i := 0; i < numUnique; i++ {
		if remainder.Len() < 7 {
			return nil, nil, ErrMalformedTable
		}
		asciiBS, err := remainder.Slice(0, 7)
		if err != nil {
			return nil, nil, ErrMalformedTable
		}
		remainder, err = remainder.Slice(7, remainder.Len())
		if err != nil {
			return nil, nil, ErrMalformedTable
		}

		length, rem, err := EliasDecode(remainder)
		if err != nil {
			return nil, nil, ErrMalformedTable
		}
		if rem.Len() < int(length) {
			return nil, nil, ErrMalformedTable
		}
		code, err := rem.Slice(0, int(length))
		if err != nil {
			return nil, nil, ErrMalformedTable
		}
		remainder, err = rem.Slice(int(length), rem.Len())
		if err != nil {
			return nil, nil, ErrMalformedTable
		}

		idx := indexFromTableASCII(byte(asciiBS.ToUint64()))
		codes[idx] = code
	}

	if len(codes) != numUnique {
		return nil, nil, ErrMalformedTable
	}
	return codes, remainder, nil
}

// DecodeBody reconstructs a BWT string of exactly totalLen alphabet
// indices from the run-length body, using the supplied codebook. Running
// out of bits before totalLen symbols are produced, or producing more
// than totalLen, both surface as ErrTruncatedBody.
func DecodeBody(data *BitStream, codes map[int]*BitStream, totalLen int) ([]int, error) {
	dec, err := NewDecoder(&Codebook{codes: codes})
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, totalLen)
	remainder := data
	for len(out) < totalLen {
		count, rem, err := EliasDecode(remainder)
		if err != nil {
			return nil, ErrTruncatedBody
		}
		symbol, rem2, err := dec.Decode(rem)
		if err != nil {
			return nil, ErrTruncatedBody
		}
		remainder = rem2

		if uint64(len(out))+count > uint64(totalLen) {
			return nil, ErrTruncatedBody
		}
		for i := uint64(0); i < count; i++ {
			out = append(out, symbol)
		}
	}
	if len(out) != totalLen {
		return nil, ErrTruncatedBody
	}
	return out, nil
}
