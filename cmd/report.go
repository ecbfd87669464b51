package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	sim "github.com/precinct-sim/precinct-sim/sim"
	"github.com/precinct-sim/precinct-sim/sim/trace"
)

var (
	primary = lipgloss.Color("#7C3AED")
	muted   = lipgloss.Color("#6B7280")
	warning = lipgloss.Color("#F59E0B")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	detailStyle  = lipgloss.NewStyle().Foreground(muted)
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(warning)
)

// writePrecinctSummary prints voter count, closing vs last departure, and average wait.
func writePrecinctSummary(w io.Writer, p sim.Precinct, voters []*sim.Voter) {
	avg, err := sim.AverageWaitTime(voters)
	if err != nil {
		fmt.Fprintln(w, alertStyle.Render(fmt.Sprintf("Precinct '%s': No voters voted.", p.Name)))
		return
	}
	plural := ""
	if len(voters) > 1 {
		plural = "s"
	}
	last := voters[len(voters)-1]

	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("PRECINCT '%s'", p.Name)))
	fmt.Fprintf(w, "- %d voter%s voted.\n", len(voters), plural)
	fmt.Fprintf(w, "- Polls closed at %.1f and last voter departed at %.2f.\n", p.ClosingTime(), last.DepartureTime)
	fmt.Fprintf(w, "- Avg wait time: %.2f\n", avg)
}

// writeVoters prints one row per voter.
func writeVoters(w io.Writer, p sim.Precinct, voters []*sim.Voter) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("PRECINCT '%s'", p.Name)))
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(detailStyle).
		Headers("Arrival Time", "Voting Duration", "Start Time", "Departure Time")
	for _, v := range voters {
		t.Row(
			fmt.Sprintf("%.2f", v.ArrivalTime),
			fmt.Sprintf("%.2f", v.VotingDuration),
			fmt.Sprintf("%.2f", v.StartTime),
			fmt.Sprintf("%.2f", v.DepartureTime),
		)
	}
	fmt.Fprintln(w, t.String())
}

// writeTraceSummary prints booth contention statistics for one precinct.
func writeTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, detailStyle.Render(fmt.Sprintf(
		"- Booths: %d immediate, %d waited, %d arrived to a full precinct; mean wait %.2f, max wait %.2f",
		s.ImmediateCount, s.WaitedCount, s.ContendedCount, s.MeanWait, s.MaxWait)))
}

// writeThresholdResult prints the search answer, or that the target is unreachable,
// followed by the trial statistics of every candidate evaluated.
func writeThresholdResult(w io.Writer, p sim.Precinct, target float64, r sim.SearchResult) {
	if r.Feasible() {
		fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf(
			"Precinct '%s' exceeds average waiting time of %.2f with %.0f percent split-ticket voters",
			p.Name, r.WaitTime, r.PercentSplitTicket*100)))
	} else {
		fmt.Fprintln(w, alertStyle.Render(fmt.Sprintf(
			"Waiting times are always below %.2f in precinct '%s'", target, p.Name)))
	}
	for _, c := range r.Evaluated {
		line := fmt.Sprintf("- %3.0f%% split-ticket: median wait %.2f", c.PercentSplitTicket*100, c.MedianWait)
		if c.Trials != nil {
			line += fmt.Sprintf(" (mean %.2f, sd %.2f, range %.2f-%.2f over %d trials)",
				c.Trials.Mean, c.Trials.StdDev, c.Trials.Min, c.Trials.Max, len(c.Trials.AverageWaits))
		}
		fmt.Fprintln(w, detailStyle.Render(line))
	}
}
