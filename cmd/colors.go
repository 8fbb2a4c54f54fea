package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arlopurcell/ledgy/internal/app"
	"github.com/arlopurcell/ledgy/internal/constants"
)

type colorsFlags struct {
	Account string
}

func NewColorsCmd(a *app.App) *cobra.Command {
	flags := &colorsFlags{}

	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "Show and edit per-account display colors",
		Long: `Show and edit the display colors used when rendering an account.
Each account has its own set of color attributes, stored locally.`,
	}

	colorsCmd.PersistentFlags().StringVarP(&flags.Account, "account", "a", "", "Account to edit (default: current)")

	colorsCmd.AddCommand(newColorsShowCmd(a, flags))
	colorsCmd.AddCommand(newColorsSetCmd(a, flags))
	colorsCmd.AddCommand(newColorsResetCmd(a, flags))

	return colorsCmd
}

func resolveAccount(a *app.App, flags *colorsFlags) string {
	if flags.Account != "" {
		return flags.Account
	}
	return a.Registry.Current()
}

func newColorsShowCmd(a *app.App, flags *colorsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the color attributes of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account := resolveAccount(a, flags)

			pterm.DefaultSection.Printf("Colors for %s\n", account)

			tableData := pterm.TableData{
				{"Attribute", "Hex"},
			}
			for _, attr := range constants.ColorAttributes {
				hex := a.Prefs.Color(account, attr)
				sample := hex
				if rgb, err := pterm.NewRGBFromHEX(hex); err == nil {
					sample = rgb.Sprint(hex)
				}
				tableData = append(tableData, []string{attr, sample})
			}

			pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
			return nil
		},
	}
}

func newColorsSetCmd(a *app.App, flags *colorsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <attribute> <hex>",
		Short: "Set one color attribute of an account",
		Long: fmt.Sprintf(`Set one color attribute of an account to a hex value.

Attributes: %s`, strings.Join(constants.ColorAttributes, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := resolveAccount(a, flags)
			attribute := args[0]
			hex := strings.TrimPrefix(args[1], "#")

			if _, err := pterm.NewRGBFromHEX(hex); err != nil {
				return fmt.Errorf("invalid hex color %q", args[1])
			}

			if err := a.Prefs.SetColor(account, attribute, hex); err != nil {
				return err
			}

			pterm.Success.Printf("%s color for %s set to #%s\n", attribute, account, hex)
			return nil
		},
	}
}

func newColorsResetCmd(a *app.App, flags *colorsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the stock colors for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account := resolveAccount(a, flags)

			if err := a.Prefs.ResetColors(account); err != nil {
				return err
			}

			pterm.Success.Printf("Colors for %s reset to defaults\n", account)
			return nil
		},
	}
}
