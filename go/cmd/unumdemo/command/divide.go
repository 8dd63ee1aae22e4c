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

	"github.com/spf13/cobra"

	"github.com/unumbers/unum/go/unum"
)

var divideValue string

var Divide = &cobra.Command{
	Use:   "divide",
	Short: "Shows division by zero recovering vanished values.",
	Args:  cobra.NoArgs,
	RunE:  commandDivide,
}

func commandDivide(cmd *cobra.Command, args []string) error {
	cu, err := unum.Parse(divideValue)
	if err != nil {
		return fmt.Errorf("invalid --value: %v", err)
	}
	out := cmd.OutOrStdout()
	zero := scalar(cu, 0)
	fmt.Fprintf(out, "Initial number: %v\n\n", cu)

	// Values with a live standard component still have no quotient by
	// zero.
	if _, err := unum.Divide(cu, zero); err != nil {
		fmt.Fprintf(out, "(%v) / 0 -> error: %v\n", cu, err)
	}
	if _, err := cu.RealComponent().Div(0); err != nil {
		fmt.Fprintf(out, "(%v).real / 0 -> error: %v\n", cu, err)
	}
	if _, err := cu.ImagComponent().Div(0); err != nil {
		fmt.Fprintf(out, "(%v).imag / 0 -> error: %v\n\n", cu, err)
	}

	vanished, err := unum.Multiply(cu, zero)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "After vanishing:\n(%v) * 0 = %v\n\n", cu, vanished)

	recovered, err := unum.Divide(vanished, zero)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Division by zero undoes the vanishing:\n(%v) / 0 = %v\n", vanished, recovered)
	return nil
}

func init() {
	Divide.Flags().StringVar(&divideValue, "value", "3 + 4j", "Complete number to demonstrate with.")
	Root.AddCommand(Divide)
}
