// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jnode formats, queries, validates, and compares JSON documents.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
