/*
Copyright 2025 The Unum Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/unumbers/unum/go/unum"
)

var vanishQuantities []float64

var Vanish = &cobra.Command{
	Use:   "vanish",
	Short: "Shows a vanished summation being carried and recovered.",
	Long: "Multiplies every quantity by zero, sums the vanished results, and recovers the\n" +
		"total by dividing the sum by zero. Under standard arithmetic every quantity\n" +
		"would have collapsed to 0 at the first step.",
	Args: cobra.NoArgs,
	RunE: commandVanish,
}

func commandVanish(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	zero := unum.New(0, 0)

	total := unum.New(0, 0)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Quantity", "After * 0", "Standard view"})
	for _, q := range vanishQuantities {
		vanished, err := unum.Multiply(unum.New(q, 0), zero)
		if err != nil {
			return err
		}
		std, _ := vanished.Float64()
		table.Append([]string{
			strconv.FormatFloat(q, 'g', -1, 64),
			vanished.String(),
			strconv.FormatFloat(std, 'g', -1, 64),
		})
		if total, err = unum.Add(total, vanished); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCombined vanished structures: %v\n", total)

	recovered, err := unum.Divide(total, zero)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recovered total via division by zero: %v\n", recovered)
	return nil
}

func init() {
	Vanish.Flags().Float64SliceVar(&vanishQuantities, "quantities", []float64{5, 3}, "Quantities to vanish and recover.")
	Root.AddCommand(Vanish)
}
