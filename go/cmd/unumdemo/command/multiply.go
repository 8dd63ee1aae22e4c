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

var multiplyValue string

var Multiply = &cobra.Command{
	Use:   "multiply",
	Short: "Shows multiplication by zero relocating values instead of erasing them.",
	Args:  cobra.NoArgs,
	RunE:  commandMultiply,
}

func commandMultiply(cmd *cobra.Command, args []string) error {
	cu, err := unum.Parse(multiplyValue)
	if err != nil {
		return fmt.Errorf("invalid --value: %v", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initial number: %v\n\n", cu)

	whole, err := unum.Multiply(cu, scalar(cu, 0))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Whole number times zero:\n(%v) * 0 = %v\n\n", cu, whole)

	fmt.Fprintf(out, "Single components times zero:\n")
	fmt.Fprintf(out, "(%v).real * 0 = %v\n", cu, cu.RealComponent().Mul(0))
	fmt.Fprintf(out, "(%v).imag * 0 = %v\n\n", cu, cu.ImagComponent().Mul(0))

	one, err := unum.Multiply(cu, scalar(cu, 1))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Nonzero multiplication is untouched:\n")
	fmt.Fprintf(out, "(%v) * 1 = %v\n", cu, one)
	fmt.Fprintf(out, "(%v).real * 1 = %v\n", cu, cu.RealComponent().Mul(1))
	fmt.Fprintf(out, "(%v).imag * 1 = %v\n", cu, cu.ImagComponent().Mul(1))
	return nil
}

func init() {
	Multiply.Flags().StringVar(&multiplyValue, "value", "3 + 4j", "Complete number to demonstrate with.")
	Root.AddCommand(Multiply)
}
