package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/profile"
	"github.com/jonathan/resume-matcher/internal/textextract"
	"github.com/jonathan/resume-matcher/internal/types"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job",
	Long: "Scores one candidate against one job on skills, education, experience and application quality. " +
		"Inputs come from JSON files (--profile, --job, --application) or from the database (--profile-id, --job-id, --application-id).",
	RunE: runScore,
}

var (
	scoreProfile       string
	scoreJob           string
	scoreApplication   string
	scoreResume        string
	scoreProfileID     string
	scoreJobID         string
	scoreApplicationID string
	scoreOutput        string
	scoreVerbose       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to StudentProfile JSON")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to Job JSON")
	scoreCmd.Flags().StringVarP(&scoreApplication, "application", "a", "", "Path to Application JSON (optional)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to a PDF or DOCX résumé parsed into the profile before scoring (optional)")
	scoreCmd.Flags().StringVar(&scoreProfileID, "profile-id", "", "Student profile UUID (database)")
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "Job UUID (database)")
	scoreCmd.Flags().StringVar(&scoreApplicationID, "application-id", "", "Application UUID (database); implies its job and profile")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output CandidateScore JSON (stdout when omitted)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the score breakdown")

	scoreCmd.MarkFlagsMutuallyExclusive("profile", "profile-id")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "job-id")
	scoreCmd.MarkFlagsMutuallyExclusive("application", "application-id")

	rootCmd.AddCommand(scoreCmd)
}

// scoreInputs is one candidate/job pair ready for scoring
type scoreInputs struct {
	profile     *types.StudentProfile
	job         *types.Job
	application *types.Application
}

func runScore(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	engine, err := rt.engine()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	var in *scoreInputs
	if scoreProfileID != "" || scoreJobID != "" || scoreApplicationID != "" {
		in, err = loadScoreInputsFromDB(ctx, rt)
	} else {
		in, err = loadScoreInputsFromFiles()
	}
	if err != nil {
		return err
	}

	if scoreResume != "" {
		parsed, err := parseResumeFile(ctx, rt, scoreResume)
		if err != nil {
			return err
		}
		// an unparseable document keeps whatever résumé data the profile already has
		if parsed != nil {
			in.profile.ParsedResumeData = parsed
		}
	}

	score := engine.Score(in.profile, in.job, in.application)

	if scoreVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintScore(in.job.Title, score, engine.Weights())
	}

	return writeJSON(cmd.OutOrStdout(), scoreOutput, score)
}

func loadScoreInputsFromFiles() (*scoreInputs, error) {
	if scoreProfile == "" || scoreJob == "" {
		return nil, errors.New("--profile and --job are required (or use --profile-id/--job-id with a database)")
	}

	in := &scoreInputs{profile: &types.StudentProfile{}, job: &types.Job{}}
	if err := readJSON(scoreProfile, schemafiles.StudentProfile, in.profile); err != nil {
		return nil, err
	}
	if err := readJSON(scoreJob, schemafiles.Job, in.job); err != nil {
		return nil, err
	}
	if scoreApplication != "" {
		in.application = &types.Application{}
		if err := readJSON(scoreApplication, schemafiles.Application, in.application); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func loadScoreInputsFromDB(ctx context.Context, rt *runtime) (*scoreInputs, error) {
	store, err := rt.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	profileID, jobID := scoreProfileID, scoreJobID
	in := &scoreInputs{}

	if scoreApplicationID != "" {
		id, err := uuid.Parse(scoreApplicationID)
		if err != nil {
			return nil, fmt.Errorf("invalid --application-id: %w", err)
		}
		rec, err := store.GetApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("application %s not found", id)
		}
		in.application = &rec.Application
		if profileID == "" {
			profileID = rec.StudentProfileID.String()
		}
		if jobID == "" {
			jobID = rec.JobID.String()
		}
	}

	if profileID == "" || jobID == "" {
		return nil, errors.New("--profile-id and --job-id are required unless --application-id is given")
	}

	if in.profile, err = getProfile(ctx, store, profileID); err != nil {
		return nil, err
	}
	if in.job, err = getJob(ctx, store, jobID); err != nil {
		return nil, err
	}
	return in, nil
}

func getProfile(ctx context.Context, store *db.DB, raw string) (*types.StudentProfile, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid student profile id %q: %w", raw, err)
	}
	p, err := store.GetStudentProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("student profile %s not found", id)
	}
	return p, nil
}

func getJob(ctx context.Context, store *db.DB, raw string) (*types.Job, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", raw, err)
	}
	job, err := store.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return job, nil
}

// parseResumeFile extracts a profile from a résumé document. An unreadable document
// yields nil so that scoring still runs on the stored profile fields.
func parseResumeFile(ctx context.Context, rt *runtime, path string) (*types.ExtractedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read résumé file: %w", err)
	}
	format, err := textextract.DetectFormat(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}

	parser := profile.NewParser(
		profile.NewAssembler(rt.vocab, profile.WithLogger(rt.logger)),
		profile.WithTextExtractor(textextract.New(rt.cfg.MaxDocumentBytes)),
		profile.WithMaxTextChars(rt.cfg.MaxTextChars),
		profile.WithParserLogger(rt.logger),
	)
	result, err := parser.Parse(ctx, types.RawDocument{Data: data, Format: format})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		rt.logger.Warn("résumé could not be parsed, scoring without it", zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	return result.Profile, nil
}
