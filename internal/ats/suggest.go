package ats

// Suggest lists improvements for a resume. Nothing is suggested once the
// score reaches 80.
func Suggest(a Analysis, score int) []string {
	if score >= goodScoreThreshold {
		return []string{}
	}

	suggestions := []string{}
	if !a.Sections[SectionExperience] {
		suggestions = append(suggestions, "Add an 'Experience' section with job/internship details.")
	}
	if !a.Sections[SectionSkills] {
		suggestions = append(suggestions, "Add a clear 'Skills' section with relevant keywords.")
	}
	if !a.Contacts.HasEmail() {
		suggestions = append(suggestions, "Include an email address in contact details.")
	}
	if !a.Contacts.HasPhone() {
		suggestions = append(suggestions, "Include a phone number in contact details.")
	}
	if a.Length < minDetailedLength {
		suggestions = append(suggestions, "Consider adding more detail (projects, responsibilities).")
	}
	return suggestions
}
