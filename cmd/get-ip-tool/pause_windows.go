// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

//go:build windows

package main

import (
	"bufio"
	"fmt"
	"io"
)

// pause keeps the console window open when launched from Explorer
func pause(stdin io.Reader, stdout io.Writer) {
	fmt.Fprint(stdout, "\nPress Enter to exit...")
	_, _ = bufio.NewReader(stdin).ReadString('\n')
}
