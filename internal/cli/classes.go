package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stpnv0/ClassBooker/internal/auth"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/eligibility"
	"github.com/stpnv0/ClassBooker/internal/studioapi"
	"github.com/wb-go/wbf/retry"
)

func newClassesCmd() *cobra.Command {
	var (
		apiURL, apiKey, memberID string
		page, pageSize           int
		timeout                  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List classes with the booking decision for a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := studioapi.NewClient(studioapi.Options{
				BaseURL: apiURL,
				Tokens:  auth.StaticToken(apiKey),
				Retry:   retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 2},
			})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return listClasses(ctx, cmd.OutOrStdout(), client, memberID, page, pageSize)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "studio API base URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "studio API key")
	cmd.Flags().StringVar(&memberID, "member", "", "member id (guest when omitted)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "page size")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall request timeout")
	_ = cmd.MarkFlagRequired("api-url")
	_ = cmd.MarkFlagRequired("api-key")

	return cmd
}

type classLister interface {
	ListClasses(ctx context.Context, params domain.ListClassesParams) (*domain.ClassPage, error)
	GetMember(ctx context.Context, id string) (*domain.Member, error)
}

func listClasses(ctx context.Context, w io.Writer, api classLister, memberID string, page, pageSize int) error {
	var member *domain.Member
	if memberID != "" {
		m, err := api.GetMember(ctx, memberID)
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}
		member = m
	}

	res, err := api.ListClasses(ctx, domain.ListClassesParams{Page: page, PageSize: pageSize, MemberID: memberID})
	if err != nil {
		return fmt.Errorf("list classes: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Class", "Starts", "Spots", "Action", "Price"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 30},
	})

	for _, c := range res.Items {
		d, err := eligibility.Decide(c, member, domain.AttendanceInPerson)
		if err != nil {
			t.AppendRow(table.Row{c.ID, c.Title, "-", "-", "invalid", err.Error()})
			continue
		}
		t.AppendRow(table.Row{
			c.ID,
			c.Title,
			c.StartsAt.Format("2006-01-02 15:04"),
			spots(c),
			d.Action,
			formatPrice(d.Price) + " " + dash(string(d.Price.Method)),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "page", fmt.Sprintf("%d (%d total)", res.Page, res.Total)})
	t.Render()

	return nil
}

func spots(c *domain.ClassSession) string {
	left := c.SpotsLeft()
	if left < 0 {
		return "unlimited"
	}
	return strconv.Itoa(left) + "/" + strconv.Itoa(*c.Capacity)
}
