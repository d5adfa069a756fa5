package domain

const (
	BackendRunning = "✅ Running"

	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseAvailable      = "✅ Available"
	DatabaseWorking        = "✅ Connected & Working"
	DatabaseNotInitialized = "⚠️  Available but not initialized"
	DatabaseErrorPrefix    = "⚠️  Connected but Error: "
	DatabaseFailurePrefix  = "❌ Error: "

	StatusConnected    = "Connected"
	StatusNotConnected = "Not Connected"

	SettingSet    = "✅ Set"
	SettingNotSet = "❌ Not Set"

	// MaxCollections caps the collection names in a report.
	MaxCollections = 10
	// MaxErrorLength caps error text in a report.
	MaxErrorLength = 50
)

// Report is the body of the diagnostics endpoint. Every field is a human
// readable status; failures never turn into errors.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Message struct {
	Message string `json:"message"`
}
