package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	updStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
	headStyle = lipgloss.NewStyle().Bold(true)
)

func CreatedLine(w io.Writer, caseID, title string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+caseID+"  "+title)
}

func UpdatedLine(w io.Writer, caseID, title string) {
	fmt.Fprintln(w, updStyle.Render("upd")+"  "+caseID+"  "+title)
}

func UploadSummary(w io.Writer, created, updated int) {
	fmt.Fprintf(w, "uploaded %d test cases (%d new, %d updated)\n", created+updated, created, updated)
}

func ModuleRow(w io.Writer, id int64, name string, cases int) {
	fmt.Fprintf(w, "  %d  %s  %s\n", id, name, dimStyle.Render(fmt.Sprintf("(%d test cases)", cases)))
}

func ListRow(w io.Writer, caseID, module, suite, title string, idW, modW, suiteW int) {
	fmt.Fprintf(w, "%-*s  %-*s  %s  %s\n",
		idW, caseID,
		modW, module,
		dimStyle.Render(fmt.Sprintf("%-*s", suiteW, suite)),
		title)
}

func ShowHeader(w io.Writer, caseID, title string) {
	fmt.Fprintln(w, headStyle.Render(caseID)+"  "+title)
}

func Field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(label+":"), value)
}

// Gherkin prints a block of feature text indented and dimmed.
func Gherkin(w io.Writer, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintln(w, "  "+dimStyle.Render(line))
	}
}
