// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package response

import (
	"fmt"

	"github.com/wingedpig/getip/pkg/model"
)

// Buffer accumulates a response body delivered in chunks.
// The underlying storage always ends with a NUL byte which Len excludes.
type Buffer struct {
	data    []byte // len(data) == size+1, data[size] == 0
	maxSize int
}

// NewBuffer creates an empty buffer. maxSize <= 0 means no limit.
func NewBuffer(maxSize int) *Buffer {
	return &Buffer{
		data:    []byte{0},
		maxSize: maxSize,
	}
}

// Write appends chunk at the end of the buffer.
// It fails without modifying the buffer if the result would exceed the limit.
func (b *Buffer) Write(chunk []byte) (int, error) {
	if b.data == nil {
		b.data = []byte{0}
	}
	size := b.Len()
	if b.maxSize > 0 && size+len(chunk) > b.maxSize {
		return 0, fmt.Errorf("%w: %d + %d bytes over %d", model.ErrResponseTooLarge, size, len(chunk), b.maxSize)
	}
	if len(chunk) == 0 {
		return 0, nil
	}

	b.data = append(b.data[:size], chunk...)
	b.data = append(b.data, 0)
	return len(chunk), nil
}

// Len returns the number of bytes received so far
func (b *Buffer) Len() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data) - 1
}

// Bytes returns the received bytes without the terminator
func (b *Buffer) Bytes() []byte {
	return b.data[:b.Len()]
}

// String returns the received bytes as a string
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// CString returns the storage including the trailing NUL
func (b *Buffer) CString() []byte {
	if b.data == nil {
		return []byte{0}
	}
	return b.data
}

// Release drops the storage. The buffer is empty afterwards and may be reused.
func (b *Buffer) Release() {
	b.data = nil
}
