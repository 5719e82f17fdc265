package models

// Language is the user's preferred interface language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

// PathType is the top-level branch chosen once at onboarding.
type PathType string

const (
	PathAcademic PathType = "ACADEMIC"
	PathJobPrep  PathType = "JOB_PREP"
)

// SubPath is the finest-grained track selector. It determines both the
// visual theme and the AI persona.
type SubPath string

const (
	// Academic family
	SubPathKindergarten SubPath = "KINDERGARTEN"
	SubPathPrimary      SubPath = "PRIMARY"
	SubPathSecondary    SubPath = "SECONDARY"
	SubPathSSCHSC       SubPath = "SSC_HSC"
	SubPathAdmission    SubPath = "ADMISSION"
	SubPathMadrasa      SubPath = "MADRASA"

	// Job preparation family
	SubPathBCSPublic   SubPath = "BCS_PUBLIC"
	SubPathPrivateJob  SubPath = "PRIVATE_JOB"
	SubPathMilitary    SubPath = "MILITARY"
	SubPathSkillAbroad SubPath = "SKILL_ABROAD"
)

// ThemeMode is a named bundle of presentation choices, derived
// deterministically from the sub-path.
type ThemeMode string

const (
	ThemeFun          ThemeMode = "FUN"
	ThemeLearning     ThemeMode = "LEARNING"
	ThemeStudy        ThemeMode = "STUDY"
	ThemeExam         ThemeMode = "EXAM"
	ThemeProfessional ThemeMode = "PROFESSIONAL"
	ThemeMadrasa      ThemeMode = "MADRASA_THEME"
)

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ProfileDetails holds free-form goal and curriculum metadata collected
// during onboarding.
type ProfileDetails struct {
	ClassLevel string `json:"class_level,omitempty"`
	Curriculum string `json:"curriculum,omitempty"`
	Goal       string `json:"goal,omitempty"`
}

// UserProfile is the finalized onboarding result. It is immutable once
// created and lives only for the duration of the session.
type UserProfile struct {
	Name     string         `json:"name"`
	Language Language       `json:"language"`
	PathType PathType       `json:"path_type"`
	SubPath  SubPath        `json:"sub_path"`
	Details  ProfileDetails `json:"details"`
}

// ChatMessage is one turn in the transcript.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// MarketplaceItem is a catalog entry shown on the dashboard, tagged with
// the sub-paths it is relevant to.
type MarketplaceItem struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Type  string    `json:"type"`
	Price string    `json:"price"`
	Tags  []SubPath `json:"tags"`
	Image string    `json:"image"`
}
