package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd prints the stored session's identity, if any.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Long:  `Show the identity persisted by the last sign-in, or report that no session exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		env.Session.Restore()
		id := env.Session.Current()
		if id == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("%s <%s>\n", id.Name, id.Email)
		if id.Company != "" {
			fmt.Printf("Company: %s\n", id.Company)
		}
		if id.Bio != "" {
			fmt.Printf("Bio: %s\n", id.Bio)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
