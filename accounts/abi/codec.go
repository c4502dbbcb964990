// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// 字节对齐 ：
// 以太坊 ABI 要求所有数据都必须对齐到 32 字节，因此需要左填充或右填充来满足这一要求。
// 数值和地址类型左填充，原始字节和动态数据右填充。

// WordSize is the width of a single ABI head slot.
const WordSize = 32

// EncodedSlot is the result of encoding a single value. Static slots are
// written in place into the head of the enclosing block, dynamic slots are
// referenced from the head by offset and appended to the tail.
// EncodedSlot 是单个值的编码结果。静态槽位直接写入头部，
// 动态槽位在头部写入偏移量，数据追加到尾部。
type EncodedSlot struct {
	Dynamic bool
	Bytes   []byte
}

// IntegerToBytes converts value into exactly width big-endian bytes. Signed
// values are stored in two's complement. An error is returned if the value
// does not fit into width bytes with the requested signedness.
// IntegerToBytes 将整数转换为恰好 width 字节的大端表示。有符号数使用二进制补码。
func IntegerToBytes(value *big.Int, width int, signed bool) ([]byte, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil integer", ErrValueType)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: invalid byte width %d", ErrSchema, width)
	}
	bits := uint(width) * 8
	if !signed {
		if value.Sign() < 0 || value.BitLen() > int(bits) {
			return nil, rangeErr(value, fmt.Sprintf("a %d-bit unsigned integer", bits))
		}
		return math.PaddedBigBytes(value, width), nil
	}
	if !fitsSigned(value, bits) {
		return nil, rangeErr(value, fmt.Sprintf("a %d-bit signed integer", bits))
	}
	return math.PaddedBigBytes(twosComplement(value, bits), width), nil
}

// BytesToInteger interprets b as a big-endian integer, using two's complement
// when signed is set.
// BytesToInteger 将大端字节解释为整数，signed 为真时按二进制补码解释。
func BytesToInteger(b []byte, signed bool) *big.Int {
	value := new(big.Int).SetBytes(b)
	if signed && len(b) > 0 && b[0]&0x80 != 0 {
		value.Sub(value, new(big.Int).Lsh(common.Big1, uint(len(b))*8))
	}
	return value
}

// twosComplement returns value mod 2^bits. big.Int bitwise operations treat
// negative numbers as infinite two's complement, so masking is exact.
func twosComplement(value *big.Int, bits uint) *big.Int {
	mask := new(big.Int).Sub(new(big.Int).Lsh(common.Big1, bits), common.Big1)
	return new(big.Int).And(value, mask)
}

// fitsSigned reports whether -2^(bits-1) <= value < 2^(bits-1).
func fitsSigned(value *big.Int, bits uint) bool {
	limit := new(big.Int).Lsh(common.Big1, bits-1)
	if value.Cmp(limit) >= 0 {
		return false
	}
	return value.Cmp(limit.Neg(limit)) >= 0
}

// fitsUnsigned reports whether 0 <= value < 2^bits.
func fitsUnsigned(value *big.Int, bits uint) bool {
	return value.Sign() >= 0 && value.BitLen() <= int(bits)
}

func paddedLength(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}

// PadLeftTo32Bytes left-pads b with zeroes up to the next multiple of 32
// bytes. Input that is already aligned is returned unchanged.
func PadLeftTo32Bytes(b []byte) []byte {
	return common.LeftPadBytes(b, paddedLength(len(b)))
}

// PadRightTo32Bytes right-pads b with zeroes up to the next multiple of 32
// bytes. Input that is already aligned is returned unchanged.
func PadRightTo32Bytes(b []byte) []byte {
	return common.RightPadBytes(b, paddedLength(len(b)))
}

// PadAndLengthPrefix packs the given bytes as [L, V], the canonical
// representation of bytes and string values.
// PadAndLengthPrefix 将给定的字节数据打包为 [L, V] 的规范表示形式。
// L 表示长度，V 表示右填充到 32 字节对齐的数据。
func PadAndLengthPrefix(b []byte) []byte {
	out := make([]byte, WordSize+paddedLength(len(b)))
	putWord(out[:WordSize], len(b))
	copy(out[WordSize:], b)
	return out
}

// packNum encodes a non-negative length or offset as a 32 byte word.
func packNum(n int) []byte {
	word := make([]byte, WordSize)
	putWord(word, n)
	return word
}

func putWord(word []byte, n int) {
	binary.BigEndian.PutUint64(word[WordSize-8:], uint64(n))
}

// EncodeDynamicData lays out slots according to the head/tail rule:
//
//	enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
//
// Static slots are written into the head as is. Dynamic slots contribute a
// 32 byte offset to the head and their bytes to the tail. Offsets are
// relative to the start of the returned block.
// EncodeDynamicData 按照头部/尾部规则排列槽位。偏移量相对于返回块的起始位置。
func EncodeDynamicData(slots []EncodedSlot) []byte {
	var headSize, tailSize int
	for _, slot := range slots {
		if slot.Dynamic {
			headSize += WordSize
			tailSize += len(slot.Bytes)
		} else {
			headSize += len(slot.Bytes)
		}
	}
	out := make([]byte, headSize+tailSize)
	head, tail := 0, headSize
	for _, slot := range slots {
		if !slot.Dynamic {
			head += copy(out[head:], slot.Bytes)
			continue
		}
		putWord(out[head:head+WordSize], tail)
		head += WordSize
		tail += copy(out[tail:], slot.Bytes)
	}
	return out
}

// concatSlots joins the bytes of static slots.
func concatSlots(slots []EncodedSlot) []byte {
	size := 0
	for _, slot := range slots {
		size += len(slot.Bytes)
	}
	out := make([]byte, 0, size)
	for _, slot := range slots {
		out = append(out, slot.Bytes...)
	}
	return out
}
