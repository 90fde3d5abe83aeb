package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/borealis-data/borealis/pkg/config"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/record"
	"github.com/borealis-data/borealis/pkg/schema"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "borealis",
		Short: "Borealis - record/row compatibility layer for Snowflake",
		Long: `Borealis bridges an application's record model (unordered key/value
mappings) and Snowflake's row model (ordered, schema-positioned values),
translating field names between the two naming conventions along the way.`,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Borealis v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newSchemaCmd())
	root.AddCommand(newConfigCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSchemaCmd() *cobra.Command {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Schema inspection commands",
	}

	var samplePath, mapperName string
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer a storage schema from a sample record",
		Long: `Infer a storage schema from a JSON object read from a file.
The object's keys are encoded with the selected key mapper; every
inferred field is nullable because a one-record sample cannot establish
a non-null guarantee.

Example:
  borealis schema infer --sample employee.json --mapper camel-upper`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return inferSchema(cmd, samplePath, mapperName)
		},
	}
	inferCmd.Flags().StringVar(&samplePath, "sample", "", "path to a JSON sample record (required)")
	inferCmd.Flags().StringVar(&mapperName, "mapper", "camel-upper", "key mapper: identity, upper or camel-upper")
	_ = inferCmd.MarkFlagRequired("sample")

	schemaCmd.AddCommand(inferCmd)
	return schemaCmd
}

func inferSchema(cmd *cobra.Command, samplePath, mapperName string) error {
	mapper, ok := keymap.ByName(mapperName)
	if !ok {
		return fmt.Errorf("unknown key mapper %q", mapperName)
	}

	data, err := os.ReadFile(samplePath) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("reading sample: %w", err)
	}

	var raw map[string]interface{}
	if err := json.UnmarshalWithOption(data, &raw, json.DecodeFieldPriorityFirstWin()); err != nil {
		return fmt.Errorf("parsing sample: %w", err)
	}

	sc, err := schema.Infer(normalizeNumbers(raw), mapper)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

// normalizeNumbers rewrites JSON numbers so integral values infer as
// integers instead of the float64 the decoder hands back.
func normalizeNumbers(raw map[string]interface{}) record.Record {
	rec := make(record.Record, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok && f == float64(int64(f)) {
			rec[k] = int64(f)
			continue
		}
		rec[k] = v
	}
	return rec
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	var configPath string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			cmd.Println(string(out))
			return nil
		},
	}
	checkCmd.Flags().StringVar(&configPath, "config", "borealis.yaml", "path to the configuration file")

	configCmd.AddCommand(checkCmd)
	return configCmd
}
