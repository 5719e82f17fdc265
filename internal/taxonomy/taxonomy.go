// Package taxonomy holds the static track taxonomy: which sub-paths belong
// to which top-level path, which theme each sub-path renders with, and the
// behavioral instruction for each AI persona. All tables are immutable and
// safe for concurrent reads.
package taxonomy

import "github.com/mystudbud/studbud/internal/models"

// DefaultTheme is used only for values outside the SubPath enumeration.
const DefaultTheme = models.ThemeStudy

// DefaultPersonaInstruction is the defensive fallback for values outside
// the SubPath enumeration.
const DefaultPersonaInstruction = "You are a helpful assistant."

var themeBySubPath = map[models.SubPath]models.ThemeMode{
	models.SubPathKindergarten: models.ThemeFun,
	models.SubPathPrimary:      models.ThemeLearning,
	models.SubPathSecondary:    models.ThemeStudy,
	models.SubPathSSCHSC:       models.ThemeExam,
	models.SubPathAdmission:    models.ThemeExam,
	models.SubPathMadrasa:      models.ThemeMadrasa,
	models.SubPathBCSPublic:    models.ThemeProfessional,
	models.SubPathPrivateJob:   models.ThemeProfessional,
	models.SubPathMilitary:     models.ThemeProfessional,
	models.SubPathSkillAbroad:  models.ThemeProfessional,
}

var academicSubPaths = []models.SubPath{
	models.SubPathKindergarten,
	models.SubPathPrimary,
	models.SubPathSecondary,
	models.SubPathSSCHSC,
	models.SubPathAdmission,
	models.SubPathMadrasa,
}

var jobPrepSubPaths = []models.SubPath{
	models.SubPathBCSPublic,
	models.SubPathPrivateJob,
	models.SubPathMilitary,
	models.SubPathSkillAbroad,
}

var familyBySubPath = func() map[models.SubPath]models.PathType {
	m := make(map[models.SubPath]models.PathType, len(academicSubPaths)+len(jobPrepSubPaths))
	for _, sp := range academicSubPaths {
		m[sp] = models.PathAcademic
	}
	for _, sp := range jobPrepSubPaths {
		m[sp] = models.PathJobPrep
	}
	return m
}()

// ThemeFor returns the presentation theme for a sub-path. The mapping is
// total over the enumeration; DefaultTheme is returned for anything else.
func ThemeFor(sp models.SubPath) models.ThemeMode {
	if theme, ok := themeBySubPath[sp]; ok {
		return theme
	}
	return DefaultTheme
}

// PersonaInstructionFor returns the behavioral system instruction for a
// sub-path's AI persona. Total over the enumeration.
func PersonaInstructionFor(sp models.SubPath) string {
	if instruction, ok := personaBySubPath[sp]; ok {
		return instruction
	}
	return DefaultPersonaInstruction
}

// Family returns the top-level path a sub-path belongs to, and false for
// values outside the enumeration.
func Family(sp models.SubPath) (models.PathType, bool) {
	pt, ok := familyBySubPath[sp]
	return pt, ok
}

// BelongsTo reports whether a sub-path is part of the given top-level
// path's family.
func BelongsTo(sp models.SubPath, pt models.PathType) bool {
	family, ok := familyBySubPath[sp]
	return ok && family == pt
}

// SubPathsFor returns the ordered sub-path options for a top-level path.
func SubPathsFor(pt models.PathType) []models.SubPath {
	var src []models.SubPath
	switch pt {
	case models.PathAcademic:
		src = academicSubPaths
	case models.PathJobPrep:
		src = jobPrepSubPaths
	default:
		return nil
	}
	out := make([]models.SubPath, len(src))
	copy(out, src)
	return out
}

// AllSubPaths returns every enumerated sub-path, academic family first.
func AllSubPaths() []models.SubPath {
	out := make([]models.SubPath, 0, len(academicSubPaths)+len(jobPrepSubPaths))
	out = append(out, academicSubPaths...)
	out = append(out, jobPrepSubPaths...)
	return out
}
