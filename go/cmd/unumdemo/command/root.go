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
	"github.com/spf13/cobra"

	"github.com/unumbers/unum/go/unum"
)

var Root = &cobra.Command{
	Use:   "unumdemo",
	Short: "unumdemo demonstrates arithmetic on complete numbers.",
	Long: "`unumdemo` walks through the behavior of complete numbers: values that keep the\n" +
		"information ordinary arithmetic destroys when multiplying by zero.\n\n" +
		"Each subcommand reproduces one demonstration: multiplication by zero relocating\n" +
		"values into the vanished component, division by zero recovering them, and the\n" +
		"vanishing-summation scenario where distinct totals stay distinct after both are\n" +
		"multiplied by zero.",
	SilenceUsage: true,
}

// scalar embeds f as a plain value of the same kind as n, so the demos
// can multiply and divide by ordinary numbers without tripping the kind
// check.
func scalar(n unum.Number, f float64) unum.Number {
	s := unum.New(f, 0)
	if n.Kind() == unum.KindComplex {
		return s.AsComplex()
	}
	return s
}
