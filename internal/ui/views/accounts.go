package views

import (
	"github.com/pterm/pterm"
)

// RenderAccounts lists the known accounts in display order, marking the
// current one.
func RenderAccounts(accounts []string, current string) {
	pterm.DefaultSection.Println("Accounts")

	tableData := pterm.TableData{
		{"Account", ""},
	}
	for _, name := range accounts {
		marker := ""
		if name == current {
			marker = "current"
		}
		tableData = append(tableData, []string{name, marker})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
