// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wingedpig/getip/pkg/model"
	"github.com/wingedpig/getip/pkg/request"
	"github.com/wingedpig/getip/pkg/sources/ipapi"
	"github.com/wingedpig/getip/pkg/table"
	"github.com/wingedpig/getip/pkg/util/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, model.DefaultConfig()))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, cfg model.Config) int {
	url, err := request.Build(cfg.BaseURL, args)
	if err != nil {
		printUsage(stdout)
		return 1
	}

	log := logging.New(stderr, logging.DefaultLevel)
	client := ipapi.NewClientFromConfig(cfg, log)

	result, err := client.Lookup(context.Background(), url)
	if err != nil {
		if errors.Is(err, model.ErrClientInit) {
			fmt.Fprintf(stderr, "Error initializing client: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Request failed: %v\n", err)
		}
		return 1
	}

	fmt.Fprintln(stdout)
	opts := table.Options{Color: logging.IsTerminal(stdout)}
	if err := table.Print(stdout, table.LookupRows(result), opts); err != nil {
		log.Error(err, "Failed to print table")
		return 1
	}

	pause(stdin, stdout)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  get-ip-tool            (your public IP)")
	fmt.Fprintln(w, "  get-ip-tool -ip 8.8.8.8")
}
