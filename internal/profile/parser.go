package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/textextract"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultMaxTextChars bounds the text handed to the field extractors
const DefaultMaxTextChars = 200_000

// Pipeline stages reported to a ProgressCallback
const (
	StageExtract  = "extract"
	StageClean    = "clean"
	StageAssemble = "assemble"
)

// ProgressEvent reports the completion of one pipeline stage
type ProgressEvent struct {
	RunID    string        `json:"run_id"`
	Stage    string        `json:"stage"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}

// ProgressCallback is called after each completed stage
type ProgressCallback func(event ProgressEvent)

// Result is the outcome of parsing one document
type Result struct {
	Profile  *types.ExtractedProfile
	Metadata *ingestion.Metadata
	Failures []error
}

// Parser turns raw document bytes into an ExtractedProfile
type Parser struct {
	extractor  *textextract.Extractor
	assembler  *Assembler
	maxChars   int
	logger     *zap.Logger
	onProgress ProgressCallback
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithTextExtractor replaces the document-to-text extractor
func WithTextExtractor(e *textextract.Extractor) ParserOption {
	return func(p *Parser) { p.extractor = e }
}

// WithMaxTextChars bounds the cleaned text; zero or less disables the bound
func WithMaxTextChars(n int) ParserOption {
	return func(p *Parser) { p.maxChars = n }
}

// WithParserLogger sets the logger for stage timings
func WithParserLogger(l *zap.Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// WithProgress registers a callback for stage completion
func WithProgress(cb ProgressCallback) ParserOption {
	return func(p *Parser) { p.onProgress = cb }
}

// NewParser creates a Parser. A nil assembler uses the default vocabulary.
func NewParser(assembler *Assembler, opts ...ParserOption) *Parser {
	if assembler == nil {
		assembler = NewAssembler(nil)
	}
	p := &Parser{
		extractor: textextract.New(textextract.DefaultMaxBytes),
		assembler: assembler,
		maxChars:  DefaultMaxTextChars,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logger.OrNop(p.logger)
	return p
}

// Parse extracts, cleans and assembles a document. Text extraction errors are
// returned; extractor failures are reported in the result and never fail the parse.
func (p *Parser) Parse(ctx context.Context, doc types.RawDocument) (*Result, error) {
	started := time.Now()
	meta := ingestion.NewMetadata(doc)
	log := p.logger.With(zap.String("run_id", meta.RunID.String()), zap.String("format", string(doc.Format)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stageStart := time.Now()
	raw, err := p.extractor.Extract(doc.Data, doc.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	p.stageDone(log, meta, StageExtract, fmt.Sprintf("extracted %d bytes of text", len(raw)), stageStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stageStart = time.Now()
	text, truncated := ingestion.Truncate(ingestion.CleanText(raw), p.maxChars)
	meta.SetText(text, truncated)
	if truncated {
		log.Warn("document text truncated", zap.Int("max_chars", p.maxChars))
	}
	p.stageDone(log, meta, StageClean, fmt.Sprintf("cleaned text to %d characters", meta.TextChars), stageStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stageStart = time.Now()
	prof, failures := p.assembler.Assemble(text)
	result := &Result{Profile: prof, Metadata: meta, Failures: make([]error, 0, len(failures))}
	for _, f := range failures {
		meta.Failures = append(meta.Failures, f.Field)
		result.Failures = append(result.Failures, f)
	}
	p.stageDone(log, meta, StageAssemble,
		fmt.Sprintf("found %d skills, %d education and %d experience entries",
			len(prof.Skills), len(prof.Education), len(prof.Experience)),
		stageStart)

	meta.DurationMS = time.Since(started).Milliseconds()
	log.Debug("document parsed",
		zap.String("name", logger.Preview(prof.FullName, 40)),
		zap.Int("failures", len(failures)),
		zap.Int64("duration_ms", meta.DurationMS))

	return result, nil
}

// ParseOrEmpty never returns a nil profile: when parsing fails the caller gets an
// empty profile together with the error and can continue its workflow.
func (p *Parser) ParseOrEmpty(ctx context.Context, doc types.RawDocument) (*types.ExtractedProfile, error) {
	result, err := p.Parse(ctx, doc)
	if err != nil {
		return types.NewExtractedProfile(), err
	}
	return result.Profile, nil
}

func (p *Parser) stageDone(log *zap.Logger, meta *ingestion.Metadata, stage, message string, start time.Time) {
	elapsed := time.Since(start)
	log.Debug("stage complete", zap.String("stage", stage), zap.Duration("elapsed", elapsed))
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{
			RunID:    meta.RunID.String(),
			Stage:    stage,
			Message:  message,
			Duration: elapsed,
		})
	}
}
