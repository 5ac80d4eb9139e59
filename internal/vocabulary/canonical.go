package vocabulary

import "strings"

// CanonicalSkill normalizes a skill name to its canonical form
func (v *Vocabulary) CanonicalSkill(skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	if canonical, ok := v.SkillAliases[strings.ToLower(normalized)]; ok {
		return canonical
	}

	// Prefer the vocabulary's display casing for known skills
	for _, known := range v.Skills {
		if strings.EqualFold(known, normalized) {
			return known
		}
	}

	return normalized
}

// SkillKey returns the case-insensitive comparison key of a skill name.
// Two names with the same key denote the same skill.
func (v *Vocabulary) SkillKey(skillName string) string {
	return strings.ToLower(v.CanonicalSkill(skillName))
}
