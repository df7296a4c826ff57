package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/birdmanoutman/ppTranslator/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pptranslator <input.pptx>",
		Short: "Bilingual PowerPoint translator",
		Long: `pptranslator translates the text of a PowerPoint presentation and
inserts each translation below its original, preserving position,
style and readable font sizes.

Translations come from a local Ollama server by default; any
OpenAI-compatible API can be used instead.

Examples:
  pptranslator deck.pptx                          # zh→en via local Ollama
  pptranslator --from-lang en --to-lang zh deck.pptx
  pptranslator --backend openai --model gpt-4o-mini deck.pptx
  pptranslator --check                            # probe the Ollama server`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.pptranslator.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default: <input>_translated.pptx)")
	cmd.Flags().StringVar(&flags.FromLang, "from-lang", flags.FromLang, "Source language tag")
	cmd.Flags().StringVar(&flags.ToLang, "to-lang", flags.ToLang, "Target language tag")
	cmd.Flags().StringVar(&flags.Backend, "backend", flags.Backend, "Translation backend: ollama or openai")
	cmd.Flags().StringVar(&flags.Model, "model", flags.Model, "Model name for the translation backend")
	cmd.Flags().StringVar(&flags.Host, "host", flags.Host, "Translation server base URL (default: local Ollama server for the ollama backend, public API for openai)")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Probe the translation server and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the models available on the translation server and exit")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable diagnostic logging")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.from", cmd.Flags().Lookup("from-lang"))
	viper.BindPFlag("translate.to", cmd.Flags().Lookup("to-lang"))
	viper.BindPFlag("backend.name", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("backend.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("backend.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".pptranslator" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pptranslator")
	}

	// Environment variables
	viper.SetEnvPrefix("PPTRANSLATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("backend.openai_key")
}
