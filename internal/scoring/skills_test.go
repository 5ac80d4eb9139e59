package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func jobWithSkills(names ...string) *types.Job {
	job := &types.Job{Title: "Engineer"}
	for _, n := range names {
		job.Skills = append(job.Skills, types.JobSkill{Name: n})
	}
	return job
}

func TestScoreSkills(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name    string
		profile *types.StudentProfile
		job     *types.Job
		want    int
	}{
		{
			name:    "job without skills",
			profile: &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go"}}},
			job:     jobWithSkills(),
			want:    0,
		},
		{
			name: "resume source earns flat bonus",
			profile: &types.StudentProfile{ParsedResumeData: &types.ExtractedProfile{
				Skills: []string{"python", "django"},
			}},
			job:  jobWithSkills("python", "sql"),
			want: 45,
		},
		{
			name:    "profile years bonus capped at three",
			profile: &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go", YearsOfExperience: floatPtr(5)}}},
			job:     jobWithSkills("Go"),
			want:    100,
		},
		{
			name:    "profile proficiency bonus",
			profile: &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go", Proficiency: floatPtr(6)}}},
			job:     jobWithSkills("Go"),
			want:    90,
		},
		{
			name:    "years take precedence over proficiency",
			profile: &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go", YearsOfExperience: floatPtr(1), Proficiency: floatPtr(9)}}},
			job:     jobWithSkills("Go"),
			want:    80,
		},
		{
			name:    "profile without detail",
			profile: &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go"}}},
			job:     jobWithSkills("Go"),
			want:    70,
		},
		{
			name: "resume evidence preferred over profile",
			profile: &types.StudentProfile{
				Skills:           []types.ProfileSkill{{Name: "Python", YearsOfExperience: floatPtr(5)}},
				ParsedResumeData: &types.ExtractedProfile{Skills: []string{"Python"}},
			},
			job:  jobWithSkills("python"),
			want: 90,
		},
		{
			name: "profile fills skills missing from resume",
			profile: &types.StudentProfile{
				Skills:           []types.ProfileSkill{{Name: "SQL", YearsOfExperience: floatPtr(3)}},
				ParsedResumeData: &types.ExtractedProfile{Skills: []string{"Python"}},
			},
			job:  jobWithSkills("python", "sql"),
			want: 95,
		},
		{
			name:    "aliases compare equal",
			profile: &types.StudentProfile{ParsedResumeData: &types.ExtractedProfile{Skills: []string{"Golang", "k8s"}}},
			job:     jobWithSkills("Go", "Kubernetes"),
			want:    90,
		},
		{
			name:    "no match",
			profile: &types.StudentProfile{ParsedResumeData: &types.ExtractedProfile{Skills: []string{"Ruby"}}},
			job:     jobWithSkills("Go"),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ScoreSkills(tt.profile, tt.job))
		})
	}
}

func TestScoreSkills_DuplicateJobSkillsCountOnce(t *testing.T) {
	e := newTestEngine(t)
	profile := &types.StudentProfile{Skills: []types.ProfileSkill{{Name: "Go"}}}

	assert.Equal(t, 35, e.ScoreSkills(profile, jobWithSkills("Go", "golang", "Rust")))
}
