package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Output     string
	FromLang   string
	ToLang     string
	Check      bool
	ListModels bool
	Verbose    bool

	// Backend flags
	Backend string
	Model   string
	Host    string
}

// NewFlags creates a new Flags instance with default values. Host is
// left empty so each backend applies its own default: the local server
// for ollama, the public API for openai.
func NewFlags() *Flags {
	return &Flags{
		FromLang: "zh",
		ToLang:   "en",
		Backend:  "ollama",
		Model:    "llama3:8b",
	}
}
