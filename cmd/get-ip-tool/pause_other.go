// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

//go:build !windows

package main

import "io"

func pause(io.Reader, io.Writer) {}
