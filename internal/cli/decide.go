package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/eligibility"
	"github.com/stpnv0/ClassBooker/internal/studioapi"
)

func newDecideCmd() *cobra.Command {
	var classPath, memberPath, attendance string

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Evaluate a booking decision from JSON files",
		Long:  `Reads a class session (and optionally a member) in studio API JSON format and prints the booking decision.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := readFile(classPath, studioapi.DecodeClass)
			if err != nil {
				return fmt.Errorf("read class: %w", err)
			}

			var member *domain.Member
			if memberPath != "" {
				if member, err = readFile(memberPath, studioapi.DecodeMember); err != nil {
					return fmt.Errorf("read member: %w", err)
				}
			}

			d, err := eligibility.Decide(class, member, domain.AttendanceType(attendance))
			if err != nil {
				return err
			}

			renderDecision(cmd.OutOrStdout(), class, d)
			return nil
		},
	}

	cmd.Flags().StringVar(&classPath, "class", "", "path to a class session JSON file")
	cmd.Flags().StringVar(&memberPath, "member", "", "path to a member JSON file (guest when omitted)")
	cmd.Flags().StringVar(&attendance, "attendance", "", "attendance type: in_person or zoom")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func readFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	return decode(f)
}

func renderDecision(w io.Writer, class *domain.ClassSession, d domain.Decision) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Class", class.Title},
		{"Action", d.Action},
		{"Attendance", d.Attendance},
		{"Price", formatPrice(d.Price)},
		{"Method", dash(string(d.Price.Method))},
		{"Reason", dash(string(d.Reason))},
	})
	t.Render()
}

func formatPrice(p domain.Price) string {
	switch {
	case p.Method == "":
		return "-"
	case p.Credits > 0:
		return fmt.Sprintf("%d credit", p.Credits)
	default:
		return p.Amount.StringFixed(2)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
