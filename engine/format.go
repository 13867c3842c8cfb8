/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package engine

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders amount as whole currency units with thousands
// separators, e.g. "₹25,000". Halves round to even.
func (e *Engine) FormatAmount(amount float64) string {
	rounded := math.RoundToEven(amount)
	if !(math.Abs(rounded) < 1<<63) {
		// Outside int64; registry costs never get here.
		return e.opts.CurrencySymbol + humanize.Commaf(rounded)
	}

	return e.opts.CurrencySymbol + humanize.Comma(int64(rounded))
}
