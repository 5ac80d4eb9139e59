package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
	schemafiles "github.com/jonathan/resume-matcher/schemas"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank many candidates against one job",
	Long: "Scores every candidate against a job and orders them by overall score. Candidates come from " +
		"a directory of candidate JSON files, a JSON array file, or the applications stored for --job-id.",
	RunE: runRank,
}

var (
	rankJob         string
	rankCandidates  string
	rankJobID       string
	rankConcurrency int
	rankOutput      string
	rankVerbose     bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to Job JSON")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Directory of candidate JSON files or a JSON array of candidates")
	rankCmd.Flags().StringVar(&rankJobID, "job-id", "", "Job UUID; ranks every stored application to the job (database)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Maximum candidates scored in parallel (config value when omitted)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output RankedCandidates JSON (stdout when omitted)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print the top of the ranking")

	rankCmd.MarkFlagsMutuallyExclusive("job", "job-id")
	rankCmd.MarkFlagsMutuallyExclusive("candidates", "job-id")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
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
	var (
		job        *types.Job
		candidates []ranking.Candidate
	)
	switch {
	case rankJobID != "":
		job, candidates, err = loadRankInputsFromDB(ctx, rt)
	case rankJob != "" && rankCandidates != "":
		job = &types.Job{}
		if err = readJSON(rankJob, schemafiles.Job, job); err == nil {
			candidates, err = loadCandidates(rankCandidates)
		}
	default:
		err = errors.New("--job and --candidates are required (or use --job-id with a database)")
	}
	if err != nil {
		return err
	}

	concurrency := rankConcurrency
	if concurrency <= 0 {
		concurrency = rt.cfg.Concurrency
	}

	ranked, err := ranking.RankCandidates(ctx, engine, job, candidates, concurrency)
	if err != nil {
		return err
	}
	rt.logger.Debug("candidates ranked", zap.String("job", job.Title), zap.Int("count", len(ranked.Ranked)))

	if err := schemas.ValidateValue(schemafiles.RankedCandidates, ranked); err != nil {
		rt.logger.Warn("ranking does not match schema", zap.Error(err))
	}

	if rankVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRanking(ranked)
	}

	return writeJSON(cmd.OutOrStdout(), rankOutput, ranked)
}

// loadCandidates reads a JSON array of candidates, or every *.json file in a directory.
// Candidates without an id take the file name (directory) or their position (array).
func loadCandidates(path string) ([]ranking.Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("candidates not found: %w", err)
	}

	if !info.IsDir() {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates file: %w", err)
		}
		var candidates []ranking.Candidate
		if err := json.Unmarshal(content, &candidates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
		}
		for i := range candidates {
			if err := checkCandidate(&candidates[i], fmt.Sprintf("candidate-%d", i+1)); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		return candidates, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	sort.Strings(files)

	candidates := make([]ranking.Candidate, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidate file: %w", err)
		}
		var c ranking.Candidate
		if err := json.Unmarshal(content, &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", f, err)
		}
		if err := checkCandidate(&c, strings.TrimSuffix(filepath.Base(f), ".json")); err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func checkCandidate(c *ranking.Candidate, defaultID string) error {
	if c.ID == "" {
		c.ID = defaultID
	}
	if c.Profile == nil {
		return fmt.Errorf("candidate %s has no profile", c.ID)
	}
	if err := schemas.ValidateValue(schemafiles.StudentProfile, c.Profile); err != nil {
		return fmt.Errorf("candidate %s: %w", c.ID, err)
	}
	return nil
}

func loadRankInputsFromDB(ctx context.Context, rt *runtime) (*types.Job, []ranking.Candidate, error) {
	store, err := rt.connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	job, err := getJob(ctx, store, rankJobID)
	if err != nil {
		return nil, nil, err
	}

	records, err := store.ListApplicationsForJob(ctx, job.ID)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]ranking.Candidate, 0, len(records))
	for _, rec := range records {
		p, err := store.GetStudentProfile(ctx, rec.StudentProfileID)
		if err != nil {
			return nil, nil, err
		}
		if p == nil {
			rt.logger.Warn("skipping application without profile",
				zap.String("application_id", rec.Application.ID.String()))
			continue
		}
		app := rec.Application
		candidates = append(candidates, ranking.Candidate{
			ID:          rec.StudentProfileID.String(),
			Profile:     p,
			Application: &app,
		})
	}
	if len(candidates) == 0 {
		rt.logger.Info("no applications for job", zap.String("job_id", job.ID.String()))
	}
	return job, candidates, nil
}
