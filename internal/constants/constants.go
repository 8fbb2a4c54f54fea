package constants

const (
	CentsPerUnit = 100

	MaxNameLen = 100

	DefaultAPIBaseURL = "http://localhost:8000/api"
)

// Accounts seeded on first run so the client is never empty before the
// first successful sync.
var DefaultAccounts = []string{"spend", "saved"}

// Display color attributes, with the stock hex values restored by
// `ledgy colors reset`.
var DefaultColors = map[string]string{
	"Button":     "17a2b8",
	"ButtonText": "ffffff",
	"Background": "ffffff",
	"Balance":    "000000",
}

// ColorAttributes lists the attribute names in a stable display order.
var ColorAttributes = []string{"Button", "ButtonText", "Background", "Balance"}
