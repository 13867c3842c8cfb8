/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/engine"
	"github.com/humaidq/swasthya/registry"
)

var CmdTests = &cli.Command{
	Name:  "tests",
	Usage: "List the test registry or resolve a single test name",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "normalize",
			Usage: "resolve NAME and print its canonical name, cost and validity as JSON",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "only list tests in this category (blood, imaging, urine, other)",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string holding the test registry (optional)",
		},
	}, engineFlags...),
	Action: listTests,
}

func listTests(ctx context.Context, cmd *cli.Command) error {
	if err := configureLogging(cmd, ""); err != nil {
		return err
	}

	reg, store, err := loadRegistry(ctx, cmd.String("database-url"), cmd.String("registry-file"))
	if err != nil {
		return err
	}

	if store != nil {
		defer store.Close()
	}

	eng := engine.New(reg, engineOptions(cmd))
	out := cmd.Root().Writer

	if name := cmd.String("normalize"); name != "" {
		return writeIndentedJSON(out, eng.Describe(name))
	}

	var filter *registry.Category

	if raw := cmd.String("category"); raw != "" {
		category, err := registry.ParseCategory(raw)
		if err != nil {
			return err
		}

		filter = &category
	}

	return printRegistry(out, eng, filter)
}

func printRegistry(w io.Writer, eng *engine.Engine, filter *registry.Category) error {
	reg := eng.Registry()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TEST\tCATEGORY\tCOST\tVALIDITY")

	for _, def := range reg.Definitions() {
		if filter != nil && def.Category != *filter {
			continue
		}

		validity := fmt.Sprintf("%d days", def.ValidityDays)
		if def.ValidityDays == 0 {
			validity = fmt.Sprintf("%d days (default)", reg.DefaultValidityDays())
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.CanonicalName, def.Category, eng.FormatAmount(def.CostUnits), validity)
	}

	fmt.Fprintf(tw, "\n%s tests, %s aliases; unknown tests cost %s and stay valid %d days\n",
		humanize.Comma(int64(len(reg.Definitions()))),
		humanize.Comma(int64(len(reg.Aliases()))),
		eng.FormatAmount(reg.DefaultCost()),
		reg.DefaultValidityDays())

	return tw.Flush()
}
