package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arlopurcell/ledgy/internal/model"
	"github.com/arlopurcell/ledgy/internal/prefs"
	"github.com/arlopurcell/ledgy/internal/utils"
)

// RenderLedger prints the balance and both transaction lists from a
// single snapshot, so what is shown is always mutually consistent.
func RenderLedger(account string, snap *model.LedgerSnapshot, p *prefs.Store) {
	balance := fmt.Sprintf("$%s", utils.FormatFromCents(snap.Balance))
	balanceLine := styled(p.Color(account, "Balance"), fmt.Sprintf("%s balance: %s", account, balance))
	pterm.DefaultSection.Println(balanceLine)

	pterm.DefaultSection.WithLevel(2).Println("Credits")
	renderTransactions(snap.Credits, false)

	pterm.DefaultSection.WithLevel(2).Println("Debits")
	renderTransactions(snap.Debits, true)
}

func renderTransactions(transactions []model.Transaction, negate bool) {
	if len(transactions) == 0 {
		pterm.Info.Println("No transactions")
		return
	}

	tableData := pterm.TableData{
		{"ID", "Amount", "Description"},
	}
	for _, t := range transactions {
		amount := t.Amount
		if negate {
			// debits are stored negative and displayed as magnitude
			amount = -amount
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", t.RowID),
			"$" + utils.FormatFromCents(amount),
			t.Description,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// styled colors a line with a stored hex color, falling back to plain
// text when the hex value is unusable.
func styled(hex string, text string) string {
	rgb, err := pterm.NewRGBFromHEX(hex)
	if err != nil {
		return text
	}
	return rgb.Sprint(text)
}
