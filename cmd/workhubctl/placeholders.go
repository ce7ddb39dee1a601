package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/analytics"
)

func newPlaceholdersCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "placeholders",
		Short: "Print the demo statistics that are not derived from data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := analytics.Placeholders()
			if global.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			renderPlaceholders(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func renderPlaceholders(w io.Writer, p analytics.PlaceholderStats) {
	fmt.Fprintln(w, "PLACEHOLDER DATA: fixed demo figures, not computed from employee records")

	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Statistic", "Segment", "Value"})
	t.SetAutoFormatHeaders(false)
	t.SetAutoMergeCells(true)
	t.Append([]string{"Gender", "Male", strconv.Itoa(p.Gender.Male)})
	t.Append([]string{"Gender", "Female", strconv.Itoa(p.Gender.Female)})
	t.Append([]string{"Job satisfaction", "Satisfied", strconv.Itoa(p.JobSatisfaction.Satisfied)})
	t.Append([]string{"Job satisfaction", "Neutral", strconv.Itoa(p.JobSatisfaction.Neutral)})
	t.Append([]string{"Job satisfaction", "Dissatisfied", strconv.Itoa(p.JobSatisfaction.Dissatisfied)})
	t.Append([]string{"Remote work", "Onsite", strconv.Itoa(p.RemoteWork.Onsite)})
	t.Append([]string{"Remote work", "Remote", strconv.Itoa(p.RemoteWork.Remote)})
	t.Append([]string{"Remote work", "Hybrid", strconv.Itoa(p.RemoteWork.Hybrid)})
	for _, m := range p.EmployeeGrowth {
		t.Append([]string{"Employee growth", m.Month, strconv.Itoa(m.Count)})
	}
	t.Render()
}
