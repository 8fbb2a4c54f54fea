package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/utils"
)

// RenderCrons prints the recurring-transaction definitions for an account.
func RenderCrons(account string, crons []model.Cron) {
	pterm.DefaultSection.Printf("Recurring transactions for %s\n", account)

	if len(crons) == 0 {
		pterm.Info.Println("No recurring transactions")
		return
	}

	tableData := pterm.TableData{
		{"ID", "Schedule", "Amount", "Description"},
	}
	for _, cron := range crons {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", cron.RowID),
			cron.Spec.Schedule.String(),
			"$" + utils.FormatFromCents(cron.Spec.Amount),
			cron.Spec.Description,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
