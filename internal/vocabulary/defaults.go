package vocabulary

var defaultSkills = []string{
	// Languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"Swift", "Kotlin", "Scala", "SQL", "HTML", "CSS",
	// Frameworks and runtimes
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", ".NET",
	"Next.js", "GraphQL", "REST",
	// Data
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka", "Spark", "Pandas",
	"NumPy", "TensorFlow", "PyTorch", "Machine Learning", "Data Analysis", "Tableau", "Excel",
	// Infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Linux", "Git", "CI/CD", "Jenkins",
	// Practices and soft skills
	"Agile", "Scrum", "Leadership", "Communication", "Teamwork", "Problem Solving",
	"Project Management",
}

var defaultDegreeKeywords = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "doctor of", "mba", "associate",
	"diploma", "b.s.", "b.sc", "bsc", "b.a.", "m.s.", "m.sc", "msc", "m.a.", "b.tech",
	"m.tech", "b.e.", "m.e.", "high school", "ged",
}

var defaultSectionAliases = map[Section][]string{
	SectionEducation: {
		"education", "academic background", "academic history", "educational background",
		"education and training", "academics", "qualifications",
	},
	SectionExperience: {
		"experience", "work experience", "professional experience", "employment history",
		"work history", "employment", "career history", "relevant experience",
	},
	SectionSkills: {
		"skills", "technical skills", "core competencies", "competencies", "key skills",
		"skills and abilities", "technologies", "tech stack", "expertise",
	},
	SectionSummary:        {"summary", "professional summary", "profile", "objective", "about me", "career objective"},
	SectionProjects:       {"projects", "personal projects", "selected projects", "portfolio"},
	SectionCertifications: {"certifications", "certificates", "licenses and certifications", "licenses"},
	SectionAwards:         {"awards", "honors", "honors and awards", "achievements"},
	SectionLanguages:      {"languages", "spoken languages"},
	SectionInterests:      {"interests", "hobbies", "hobbies and interests"},
	SectionReferences:     {"references"},
}

var defaultStopwords = []string{
	"and", "with", "or", "the", "for", "from", "into", "using", "etc", "other", "various",
	"including", "such", "tools", "skills", "experience", "knowledge", "familiar",
	"proficient", "advanced", "intermediate", "basic", "years", "year",
}

var defaultExcludedSiteDomains = []string{
	"linkedin.com", "indeed.com", "glassdoor.com", "monster.com", "ziprecruiter.com",
	"dice.com", "careerbuilder.com", "simplyhired.com", "angel.co", "wellfound.com",
}

// defaultSkillAliases maps common skill name variants to canonical names
var defaultSkillAliases = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"js":                  "JavaScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue.js":              "Vue",
	"vuejs":               "Vue",
	"nodejs":              "Node.js",
	"node":                "Node.js",
	"postgres":            "PostgreSQL",
	"psql":                "PostgreSQL",
	"mongo":               "MongoDB",
	"py":                  "Python",
	"python3":             "Python",
	"ml":                  "Machine Learning",
	"amazon web services": "AWS",
	"google cloud":        "GCP",
	"ci cd":               "CI/CD",
	"cicd":                "CI/CD",
}
