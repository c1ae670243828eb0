// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/figureit/career-engine/internal/market"
	"github.com/figureit/career-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContext outputs the derived context lens.
func (p *Printer) PrintContext(lens *types.ContextProfile) {
	if lens == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strictness:   %s\n", lens.StrictnessLevel))
	sb.WriteString(fmt.Sprintf("Urgency:      %s\n", lens.UrgencyLevel))
	sb.WriteString(fmt.Sprintf("Focus cap:    %d\n", lens.MaxFocusSkills))
	sb.WriteString(fmt.Sprintf("Proof level:  %s", lens.ProofExpectation))

	p.printBox("CONTEXT LENS", sb.String())
}

// PrintEvidence outputs the evidence snapshot with its qualitative flags.
func (p *Printer) PrintEvidence(profile *types.EvidenceProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.GitHub.Valid {
		sb.WriteString(fmt.Sprintf("GitHub:    %d repos, %d stars, %d forks\n",
			profile.GitHub.Repos, profile.GitHub.Stars, profile.GitHub.Forks))
		if profile.GitHub.TopLanguage != "" {
			sb.WriteString(fmt.Sprintf("           mostly %s\n", profile.GitHub.TopLanguage))
		}
	} else {
		sb.WriteString("GitHub:    not linked or unreachable\n")
	}

	if profile.LeetCode.Valid {
		sb.WriteString(fmt.Sprintf("LeetCode:  %d solved (%dE / %dM / %dH)\n",
			profile.LeetCode.TotalSolved, profile.LeetCode.Easy,
			profile.LeetCode.Medium, profile.LeetCode.Hard))
	} else {
		sb.WriteString("LeetCode:  not linked or unreachable\n")
	}

	if len(profile.Flags) > 0 {
		sb.WriteString("\nFlags:\n")
		count := min(len(profile.Flags), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Flags[i]))
		}
		if len(profile.Flags) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Flags)-maxItemsToShow))
		}
	}

	p.printBox("EVIDENCE SNAPSHOT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the focus/park/drop partition with reasons.
func (p *Printer) PrintDecision(state *types.DecisionState) {
	if state == nil {
		return
	}

	var sb strings.Builder
	writeBucket := func(label string, paths []string) {
		sb.WriteString(fmt.Sprintf("%s\n", label))
		if len(paths) == 0 {
			sb.WriteString("  (none)\n")
			return
		}
		for _, path := range paths {
			sb.WriteString(fmt.Sprintf("  • %s\n", path))
			if reason := state.Reasons[path]; reason != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", reason))
			}
		}
	}

	writeBucket("FOCUS", state.Focus)
	sb.WriteString("\n")
	writeBucket("PARK", state.Park)
	sb.WriteString("\n")
	writeBucket("DROP", state.Drop)

	p.printBox("DECISION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarket outputs the deterministic market table sorted by multiplier.
func (p *Printer) PrintMarket(snapshot market.Snapshot) {
	if len(snapshot.Skills) == 0 {
		return
	}

	names := make([]string, 0, len(snapshot.Skills))
	for name := range snapshot.Skills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := snapshot.Skills[names[i]], snapshot.Skills[names[j]]
		if a.Multiplier != b.Multiplier {
			return a.Multiplier > b.Multiplier
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-14s %6s %10s %12s\n", "skill", "jobs", "trend", "multiplier"))
	for _, name := range names {
		s := snapshot.Skills[name]
		sb.WriteString(fmt.Sprintf("%-14s %6d %10s %12.2f\n", name, s.Jobs, s.Trend, s.Multiplier))
	}

	p.printBox("MARKET PULSE", strings.TrimSuffix(sb.String(), "\n"))
}
