package domain

// Config represents the brandkit configuration loaded from brandkit.yaml,
// the environment and flags.
type Config struct {
	Paths PathsConfig
	Board BoardConfig
}

type PathsConfig struct {
	Template string
	Output   string
	IconPack string
}

// BoardConfig points the board client at a GitHub ProjectV2 and its status field.
type BoardConfig struct {
	APIURL        string
	Token         string
	ProjectID     string
	StatusFieldID string
	TodoOptionID  string
	PageSize      int
}

// Filter returns the status filter selecting the configured "Todo" option.
func (b BoardConfig) Filter() StatusFilter {
	return StatusFilter{FieldID: b.StatusFieldID, OptionID: b.TodoOptionID}
}

// DefaultConfig provides the pipeline defaults used when brandkit.yaml is
// missing or partial.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Template: "ios/BrandingTemplate.xcconfig",
			Output:   "ios/Branding.xcconfig",
			IconPack: "docs/branding/icon-pack",
		},
		Board: BoardConfig{
			APIURL:        "https://api.github.com/graphql",
			ProjectID:     "PVT_kwDOBTzBoc4AyMGf",
			StatusFieldID: "PVTSSF_lADOBTzBoc4AyMGfzgoLqjg",
			TodoOptionID:  "57a3a001",
			PageSize:      50,
		},
	}
}
