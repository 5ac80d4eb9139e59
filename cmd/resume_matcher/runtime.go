package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// runtime is the configuration and shared components every command starts from
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	vocab  *vocabulary.Vocabulary
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logDebug {
		cfg.Log.Debug = true
	}
	if logJSON {
		cfg.Log.JSON = true
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	vocab, err := config.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: log, vocab: vocab}, nil
}

func (rt *runtime) engine() (*scoring.Engine, error) {
	return scoring.NewEngine(rt.cfg.Weights, scoring.WithVocabulary(rt.vocab))
}

func (rt *runtime) connect(ctx context.Context) (*db.DB, error) {
	if rt.cfg.DatabaseURL == "" {
		return nil, errors.New("database_url is not configured (set RESUME_MATCHER_DATABASE_URL or DATABASE_URL)")
	}
	return db.Connect(ctx, rt.cfg.DatabaseURL, db.WithLogger(rt.logger))
}

func (rt *runtime) close() {
	_ = rt.logger.Sync()
}

// readJSON decodes the JSON file at path into v after validating it against the named schema
func readJSON(path, schema string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.ValidateBytes(schema, content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty
func writeJSON(w io.Writer, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err := w.Write(jsonBytes)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
