package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rolesCmd shows only the role claims of the current identity.
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show the current identity's role claims",
	Long: `The roles command performs a full state fetch and lists the role
claims granted to the current identity, including issuer metadata when the
server provides it. Entries the server sent with an empty type or value are
not part of the identity and never appear here.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		p, _ := sess.svc.FetchState(cmd.Context())
		if !p.IsAuthenticated() {
			pterm.Println("🔒 You're not logged in yet!")
			pterm.Println("   Run 'identikit login' to get started.")
			return nil
		}

		roleClaims := p.RoleClaims()
		if len(roleClaims) == 0 {
			pterm.Printf("%s has no role claims\n", p.Email())
			return nil
		}

		data := pterm.TableData{{"Role", "Value", "Issuer"}}
		for _, c := range roleClaims {
			data = append(data, []string{c.Type, c.Value, c.Issuer})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
