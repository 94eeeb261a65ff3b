package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	inboxHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(0, 1)

	inboxDateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	inboxEmailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// inboxCmd lists feedback collected by the app's contact and waitlist
// forms.
var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List contact messages and waitlist signups",
	Long:  `List the contact messages and waitlist signups collected locally by the app's forms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		contacts, err := env.Feedback.Contacts()
		if err != nil {
			return fmt.Errorf("failed to load contact messages: %w", err)
		}
		waitlist, err := env.Feedback.Waitlist()
		if err != nil {
			return fmt.Errorf("failed to load waitlist: %w", err)
		}

		if len(contacts) == 0 && len(waitlist) == 0 {
			fmt.Println("Inbox is empty.")
			return nil
		}

		if len(contacts) > 0 {
			fmt.Println(inboxHeaderStyle.Render(fmt.Sprintf("Contact Messages (%d)", len(contacts))))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, c := range contacts {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					inboxDateStyle.Render(c.CreatedAt),
					inboxEmailStyle.Render(c.Email),
					c.Message)
			}
			w.Flush()
			fmt.Println()
		}

		if len(waitlist) > 0 {
			fmt.Println(inboxHeaderStyle.Render(fmt.Sprintf("Waitlist (%d)", len(waitlist))))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, e := range waitlist {
				fmt.Fprintf(w, "%s\t%s\n",
					inboxDateStyle.Render(e.CreatedAt),
					inboxEmailStyle.Render(e.Email))
			}
			w.Flush()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inboxCmd)
}
