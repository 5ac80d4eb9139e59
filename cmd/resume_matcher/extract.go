package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/profile"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/textextract"
	"github.com/jonathan/resume-matcher/internal/types"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a résumé",
	Long:  "Extracts name, contact details, skills, education and experience from a PDF or DOCX résumé and writes an ExtractedProfile JSON.",
	RunE:  runExtract,
}

var (
	extractFile      string
	extractFormat    string
	extractOutput    string
	extractVerbose   bool
	extractProfileID string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to résumé document (required)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "Document format: pdf or docx (detected when omitted)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output ExtractedProfile JSON (stdout when omitted)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted profile")
	extractCmd.Flags().StringVar(&extractProfileID, "save-profile-id", "", "Store the result as the parsed résumé of this student profile")

	if err := extractCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	var saveTo uuid.UUID
	if extractProfileID != "" {
		if saveTo, err = uuid.Parse(extractProfileID); err != nil {
			return fmt.Errorf("invalid --save-profile-id: %w", err)
		}
	}

	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read résumé file: %w", err)
	}

	var format types.Format
	if extractFormat != "" {
		format, err = textextract.ParseFormat(extractFormat)
	} else {
		format, err = textextract.DetectFormat(filepath.Base(extractFile), data)
	}
	if err != nil {
		return err
	}

	assembler := profile.NewAssembler(rt.vocab, profile.WithLogger(rt.logger))
	parser := profile.NewParser(assembler,
		profile.WithTextExtractor(textextract.New(rt.cfg.MaxDocumentBytes)),
		profile.WithMaxTextChars(rt.cfg.MaxTextChars),
		profile.WithParserLogger(rt.logger),
	)

	ctx := commandContext(cmd)
	result, err := parser.Parse(ctx, types.RawDocument{Data: data, Format: format})
	if err != nil {
		return fmt.Errorf("failed to parse résumé: %w", err)
	}

	if err := schemas.ValidateValue(schemafiles.ExtractedProfile, result.Profile); err != nil {
		rt.logger.Warn("extracted profile does not match schema", zap.Error(err))
	}

	if extractVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintProfile(result.Profile)
		printer.PrintFailures(result.Failures)
	}

	if saveTo != uuid.Nil {
		store, err := rt.connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveParsedResume(ctx, saveTo, result.Profile); err != nil {
			return err
		}
		rt.logger.Info("parsed resume stored", zap.String("student_profile_id", saveTo.String()))
	}

	return writeJSON(cmd.OutOrStdout(), extractOutput, result.Profile)
}
