package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against a schema",
	Long: "Validates a JSON file against one of the built-in schemas (" + strings.Join(schemafiles.Names, ", ") +
		") or against a schema file on disk.",
	RunE: runValidate,
}

var (
	validateSchema     string
	validateSchemaFile string
	validateFile       string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Built-in schema name")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema-file", "", "Path to a JSON Schema file")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	validateCmd.MarkFlagsMutuallyExclusive("schema", "schema-file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	switch {
	case validateSchemaFile != "":
		err = schemas.ValidateJSON(validateSchemaFile, validateFile)
	case validateSchema != "":
		if !slices.Contains(schemafiles.Names, validateSchema) {
			return fmt.Errorf("unknown schema %q (available: %s)", validateSchema, strings.Join(schemafiles.Names, ", "))
		}
		err = schemas.ValidateFile(validateSchema, validateFile)
	default:
		return errors.New("--schema or --schema-file is required")
	}

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", validateFile)
	return nil
}
