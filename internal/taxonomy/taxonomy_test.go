package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystudbud/studbud/internal/models"
	"github.com/mystudbud/studbud/internal/taxonomy"
)

func TestTablesAreTotal(t *testing.T) {
	all := taxonomy.AllSubPaths()
	require.Len(t, all, 10)

	for _, sp := range all {
		assert.NotEmpty(t, taxonomy.ThemeFor(sp), "theme for %s", sp)

		instruction := taxonomy.PersonaInstructionFor(sp)
		assert.NotEmpty(t, instruction, "persona for %s", sp)
		assert.NotEqual(t, taxonomy.DefaultPersonaInstruction, instruction, "persona for %s must not be the fallback", sp)

		_, ok := taxonomy.Family(sp)
		assert.True(t, ok, "family for %s", sp)
	}
}

func TestTablesAreIdempotent(t *testing.T) {
	for _, sp := range taxonomy.AllSubPaths() {
		assert.Equal(t, taxonomy.ThemeFor(sp), taxonomy.ThemeFor(sp))
		assert.Equal(t, taxonomy.PersonaInstructionFor(sp), taxonomy.PersonaInstructionFor(sp))
	}
}

func TestThemeMappings(t *testing.T) {
	tests := []struct {
		subPath models.SubPath
		theme   models.ThemeMode
	}{
		{models.SubPathKindergarten, models.ThemeFun},
		{models.SubPathPrimary, models.ThemeLearning},
		{models.SubPathSecondary, models.ThemeStudy},
		{models.SubPathSSCHSC, models.ThemeExam},
		{models.SubPathAdmission, models.ThemeExam},
		{models.SubPathMadrasa, models.ThemeMadrasa},
		{models.SubPathBCSPublic, models.ThemeProfessional},
		{models.SubPathPrivateJob, models.ThemeProfessional},
		{models.SubPathMilitary, models.ThemeProfessional},
		{models.SubPathSkillAbroad, models.ThemeProfessional},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.theme, taxonomy.ThemeFor(tt.subPath), "theme for %s", tt.subPath)
	}
}

func TestPersonasAreDistinct(t *testing.T) {
	mentor := taxonomy.PersonaInstructionFor(models.SubPathBCSPublic)
	buddy := taxonomy.PersonaInstructionFor(models.SubPathKindergarten)

	assert.NotEqual(t, mentor, buddy)
	assert.Contains(t, mentor, "authoritative")
	assert.Contains(t, buddy, "friendly companion")
}

func TestUnknownSubPathFallsBack(t *testing.T) {
	unknown := models.SubPath("NOT_A_TRACK")

	assert.Equal(t, taxonomy.DefaultTheme, taxonomy.ThemeFor(unknown))
	assert.Equal(t, taxonomy.DefaultPersonaInstruction, taxonomy.PersonaInstructionFor(unknown))

	_, ok := taxonomy.Family(unknown)
	assert.False(t, ok)
}

func TestFamilyPartition(t *testing.T) {
	academic := taxonomy.SubPathsFor(models.PathAcademic)
	jobPrep := taxonomy.SubPathsFor(models.PathJobPrep)

	require.Len(t, academic, 6)
	require.Len(t, jobPrep, 4)

	for _, sp := range academic {
		assert.True(t, taxonomy.BelongsTo(sp, models.PathAcademic))
		assert.False(t, taxonomy.BelongsTo(sp, models.PathJobPrep))
	}
	for _, sp := range jobPrep {
		assert.True(t, taxonomy.BelongsTo(sp, models.PathJobPrep))
		assert.False(t, taxonomy.BelongsTo(sp, models.PathAcademic))
	}

	assert.Nil(t, taxonomy.SubPathsFor(models.PathType("OTHER")))
}

func TestMarketplaceFilter(t *testing.T) {
	items := taxonomy.ItemsFor(models.SubPathSecondary)
	require.Len(t, items, 1)
	assert.Equal(t, "SSC Physics Solver", items[0].Title)

	for _, item := range taxonomy.ItemsFor(models.SubPathBCSPublic) {
		assert.Contains(t, item.Tags, models.SubPathBCSPublic)
	}

	assert.Empty(t, taxonomy.ItemsFor(models.SubPathMilitary))
}
