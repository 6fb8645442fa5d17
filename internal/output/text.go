package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/comparator"
	"github.com/jacobarthurs/scenelint/internal/config"
)

type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// RenderReportText writes a report in the detailed or compact style. The
// compact style shows only the error and warning counts.
func RenderReportText(w io.Writer, sceneName string, r analyzer.Report, style string) error {
	tw := &textWriter{w: w}

	if style == config.StyleCompact {
		tw.printf("%s  %s  %s\n",
			styleHeading.Render(sceneName),
			styleError.Render(fmt.Sprintf("%d errors", r.Errors)),
			styleWarning.Render(fmt.Sprintf("%d warnings", r.Warns)))
		return tw.err
	}

	tw.printf("%s\n\n", styleHeading.Render("Scene Lint: "+sceneName))

	if len(r.Problems) == 0 {
		tw.printf("%s\n", styleOK.Render("No problems found."))
	} else {
		tw.printf("  Errors: %d  Warnings: %d\n\n", r.Errors, r.Warns)
		for _, p := range r.Problems {
			tw.renderProblem(p, len(r.Affected(p.Code, false)))
		}
	}

	if len(r.ProblemsIgnored) > 0 {
		tw.printf("\n%s\n\n", styleMuted.Render(fmt.Sprintf("Ignored (%d)", len(r.ProblemsIgnored))))
		for _, p := range r.ProblemsIgnored {
			tw.printf("  %s\n", styleMuted.Render(fmt.Sprintf("%d %s", p.Code, p.Title)))
		}
	}

	return tw.err
}

func (tw *textWriter) renderProblem(p *analyzer.Problem, affected int) {
	label := severityLabel(p.Severity)
	tw.printf("  %s %d %s", label, p.Code, p.Title)
	if p.Selectable {
		tw.printf(" %s", styleMuted.Render(fmt.Sprintf("(%s)", plural(affected, "object"))))
	}
	tw.printf("\n")
}

// RenderRuleText writes a problem's details with its description wrapped
// paragraph by paragraph.
func RenderRuleText(w io.Writer, p analyzer.Problem) error {
	tw := &textWriter{w: w}

	tw.printf("%s\n", styleHeading.Render(fmt.Sprintf("%d %s", p.Code, p.Title)))
	tw.printf("  %s  %s", severityLabel(p.Severity), analyzer.Category(p.Code))
	if !p.Selectable {
		tw.printf("  %s", styleMuted.Render("scene-level"))
	}
	tw.printf("\n\n")

	for i, para := range strings.Split(p.Description, "\n\n") {
		if i > 0 {
			tw.printf("\n")
		}
		tw.printf("%s\n", styleParagraph.Render(para))
	}

	return tw.err
}

// RenderRulesText lists the catalog, marking disabled rules.
func RenderRulesText(w io.Writer, defs []analyzer.Problem, disabled map[analyzer.Code]bool) error {
	tw := &textWriter{w: w}

	category := ""
	for _, p := range defs {
		if c := analyzer.Category(p.Code); c != category {
			if category != "" {
				tw.printf("\n")
			}
			category = c
			tw.printf("%s\n", styleHeading.Render(c))
		}
		line := fmt.Sprintf("  %s %d %s", severityLabel(p.Severity), p.Code, p.Title)
		if disabled[p.Code] {
			line += " " + styleMuted.Render("(disabled)")
		}
		tw.printf("%s\n", line)
	}

	return tw.err
}

// RenderSelectionText lists the objects carrying code.
func RenderSelectionText(w io.Writer, code analyzer.Code, names []string, ignored bool) error {
	tw := &textWriter{w: w}

	kind := "active"
	if ignored {
		kind = "ignored"
	}
	if len(names) == 0 {
		tw.printf("%s\n", styleMuted.Render(fmt.Sprintf("No %s findings for %d.", kind, code)))
		return tw.err
	}
	for _, name := range names {
		tw.printf("%s\n", name)
	}
	return tw.err
}

func RenderComparisonText(w io.Writer, result comparator.ComparisonResult) error {
	tw := &textWriter{w: w}
	s := result.Summary

	tw.printf("%s\n\n", styleHeading.Render("Summary"))
	tw.printf("  Errors:   %s\n", formatDelta(s.OldErrors, s.NewErrors, s.ErrorsDir))
	tw.printf("  Warnings: %s\n", formatDelta(s.OldWarns, s.NewWarns, s.WarnsDir))
	if s.OldIgnored > 0 || s.NewIgnored > 0 {
		tw.printf("  Ignored:  %d → %d\n", s.OldIgnored, s.NewIgnored)
	}
	tw.printf("\n")

	changes := s.ProblemsAdded + s.ProblemsRemoved + s.ProblemsModified
	if changes == 0 {
		tw.printf("%s\n", styleOK.Render("Reports are identical."))
		return tw.err
	}

	tw.printf("  Changes: %d added, %d resolved, %d modified\n\n",
		s.ProblemsAdded, s.ProblemsRemoved, s.ProblemsModified)

	tw.printf("%s\n\n", styleHeading.Render("Problems"))
	for _, d := range result.Deltas {
		tw.renderDelta(d)
	}

	tw.printf("\nVerdict: %s\n", verdictStyle(s).Render(s.Verdict))
	return tw.err
}

func (tw *textWriter) renderDelta(d comparator.ProblemDelta) {
	label := fmt.Sprintf("%d %s", d.Code, d.Title)
	switch d.ChangeType {
	case comparator.Added:
		tw.printf("  %s\n", styleAdded.Render("+ "+label))
	case comparator.Removed:
		tw.printf("  %s\n", styleRemoved.Render("- "+label))
	case comparator.Modified:
		tw.printf("  %s\n", styleChanged.Render("~ "+label))
	default:
		tw.printf("  %s\n", styleMuted.Render("  "+label))
	}

	if len(d.Introduced) > 0 {
		tw.printf("      new on: %s\n", strings.Join(d.Introduced, ", "))
	}
	if len(d.Resolved) > 0 {
		tw.printf("      fixed on: %s\n", strings.Join(d.Resolved, ", "))
	}
}

func formatDelta(old, new int, dir comparator.Direction) string {
	out := fmt.Sprintf("%d → %d", old, new)
	switch dir {
	case comparator.Improved:
		return styleRemoved.Render(out + " ↓")
	case comparator.Regressed:
		return styleAdded.Render(out + " ↑")
	default:
		return out
	}
}

func verdictStyle(s comparator.Summary) lipgloss.Style {
	switch {
	case s.ErrorsDir == comparator.Regressed || s.WarnsDir == comparator.Regressed:
		if s.ErrorsDir == comparator.Improved || s.WarnsDir == comparator.Improved {
			return styleChanged
		}
		return styleAdded
	case s.ErrorsDir == comparator.Improved || s.WarnsDir == comparator.Improved:
		return styleOK
	default:
		return styleMuted
	}
}

func severityLabel(s analyzer.Severity) string {
	switch s {
	case analyzer.Error:
		return styleError.Render("ERROR  ")
	case analyzer.Warning:
		return styleWarning.Render("WARNING")
	default:
		return styleMuted.Render("UNKNOWN")
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
