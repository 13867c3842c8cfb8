/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/cmd"
	"github.com/humaidq/swasthya/logging"
)

var version = "dev"

func main() {
	logging.Init()

	app := &cli.Command{
		Name:    "swasthya",
		Usage:   "Swasthya - duplicate medical test detection",
		Version: version,
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdCheck,
			cmd.CmdTests,
			cmd.CmdRegistry,
			cmd.CmdMigrate,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal("command failed", "error", err)
	}
}
