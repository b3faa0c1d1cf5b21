package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (c *cli) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <proposal-id>",
		Short: "Print the status history of a proposal",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runHistory,
	}
}

func (c *cli) runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = container.Close(ctx) }()

	proposal, err := container.ProposalUC.GetByID(ctx, args[0])
	if err != nil {
		return err
	}
	entries, err := container.Lifecycle.History(ctx, proposal.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Proposal #%s (%s) status: %s\n", proposal.DisplayNumber(), proposal.ID, proposal.Status)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSTATUS\tNOTE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.CreatedAt.Format(time.RFC3339), e.Status, e.Note)
	}
	return w.Flush()
}
