package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cognicore/nlplab/pkg/nlplab"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List phases and operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOperations(cmd.OutOrStdout())
		},
	}
}

func printOperations(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tOPERATION\tTITLE\tSAMPLE")
	for _, op := range nlplab.Operations() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Phase, op.Name, strings.TrimSuffix(op.Title, " Results"), op.Sample)
	}
	return tw.Flush()
}
