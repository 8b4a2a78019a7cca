package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pchchv/crc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog variants",
	Long: `List prints every named variant with its parameters and its check value,
the CRC of the ASCII bytes of "123456789".`,
	RunE: runList,
}

func runList(*cobra.Command, []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWIDTH\tPOLY\tINIT\tXOROUT\tREFIN\tREFOUT\tCHECK")
	for _, name := range crc.Algorithms() {
		params, _ := crc.Lookup(name)
		digits := hexWidth(params.Width)
		check := crc.MakeTable(params).Checksum([]byte(checkMessage))
		fmt.Fprintf(w, "%s\t%d\t%0*X\t%0*X\t%0*X\t%t\t%t\t%0*X\n",
			name, params.Width,
			digits, params.Polynomial,
			digits, params.InitialValue,
			digits, params.FinalXOR,
			params.ReflectInput, params.ReflectOutput,
			digits, check)
	}

	return w.Flush()
}
