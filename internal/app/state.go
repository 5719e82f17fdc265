// Package app implements the onboarding and dashboard state machine for a
// single user session: path selection, profile finalization, and the
// persona chat wired through the taxonomy tables. Each State owns its own
// session manager and transcript, so concurrent user sessions are fully
// independent.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mystudbud/studbud/internal/chat"
	"github.com/mystudbud/studbud/internal/models"
	"github.com/mystudbud/studbud/internal/provider"
	"github.com/mystudbud/studbud/internal/taxonomy"
)

// Phase is the onboarding step the session is in.
type Phase string

const (
	PhaseEntry     Phase = "entry"
	PhaseDetails   Phase = "details"
	PhaseDashboard Phase = "dashboard"
)

var (
	// ErrWrongPhase means the transition is not legal from the current phase.
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrNameRequired means Finalize was called with an empty name.
	ErrNameRequired = errors.New("name must not be empty")

	// ErrSelectionIncomplete means Finalize was called before both a path
	// and a sub-path were chosen.
	ErrSelectionIncomplete = errors.New("path and sub-path must be chosen before finalizing")

	// ErrSubPathMismatch means the sub-path does not belong to the family
	// of the chosen top-level path.
	ErrSubPathMismatch = errors.New("sub-path does not belong to the chosen path")

	// ErrUnknownValue means an enum value outside the taxonomy was supplied.
	ErrUnknownValue = errors.New("unknown enumeration value")

	// ErrSessionRestarted means the persona session was reset (logout or
	// sub-path switch) while a send was awaiting its reply; the stale
	// reply is abandoned rather than appended to the new transcript.
	ErrSessionRestarted = errors.New("session restarted while awaiting a reply")
)

// SendResult carries the two transcript turns produced by one send.
type SendResult struct {
	User  models.ChatMessage
	Reply models.ChatMessage
}

// State holds one user session's selections, finalized profile, and chat
// state. Methods are safe for concurrent use, though the flow is logically
// a single thread of control per session.
type State struct {
	logger     *zap.Logger
	manager    *chat.Manager
	transcript *chat.Transcript

	mu          sync.Mutex
	phase       Phase
	language    models.Language
	tempPath    models.PathType
	tempSubPath models.SubPath
	profile     *models.UserProfile
	chatEnabled bool

	// gen is bumped on every transcript reset. A send that resolves after
	// a reset sees a stale generation and abandons its reply instead of
	// mixing it into the new persona's transcript.
	gen uint64
}

// New builds a fresh session state in the entry phase. The provider may be
// nil; onboarding still works and the missing configuration surfaces on
// the first chat initialization attempt.
func New(p provider.ChatProvider, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		logger:     logger,
		manager:    chat.NewManager(p, logger),
		transcript: chat.NewTranscript(),
		phase:      PhaseEntry,
		language:   models.LanguageEnglish,
	}
}

// SetLanguage records the interface language preference. Legal on any
// onboarding screen; once the profile is finalized it is immutable, so the
// toggle is rejected from the dashboard.
func (s *State) SetLanguage(lang models.Language) error {
	if lang != models.LanguageEnglish && lang != models.LanguageBangla {
		return fmt.Errorf("%w: language %q", ErrUnknownValue, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDashboard {
		return fmt.Errorf("%w: language is fixed after finalization", ErrWrongPhase)
	}
	s.language = lang
	return nil
}

// ChooseTopLevelPath records the top-level branch and advances to the
// detail-entry phase. Only legal from the entry phase.
func (s *State) ChooseTopLevelPath(pt models.PathType) error {
	if pt != models.PathAcademic && pt != models.PathJobPrep {
		return fmt.Errorf("%w: path %q", ErrUnknownValue, pt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseEntry {
		return fmt.Errorf("%w: choose path from %s", ErrWrongPhase, s.phase)
	}
	s.tempPath = pt
	s.phase = PhaseDetails
	return nil
}

// Back returns from detail entry to the entry phase, discarding the
// sub-path selection.
func (s *State) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseDetails {
		return fmt.Errorf("%w: back from %s", ErrWrongPhase, s.phase)
	}
	s.tempSubPath = ""
	s.phase = PhaseEntry
	return nil
}

// ChooseSubPath records the sub-path. The value must belong to the family
// of the previously chosen top-level path; the tables alone are not
// trusted to enforce this.
func (s *State) ChooseSubPath(sp models.SubPath) error {
	if _, ok := taxonomy.Family(sp); !ok {
		return fmt.Errorf("%w: sub-path %q", ErrUnknownValue, sp)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseDetails {
		return fmt.Errorf("%w: choose sub-path from %s", ErrWrongPhase, s.phase)
	}
	if !taxonomy.BelongsTo(sp, s.tempPath) {
		return fmt.Errorf("%w: %s is not part of %s", ErrSubPathMismatch, sp, s.tempPath)
	}
	s.tempSubPath = sp
	return nil
}

// Finalize validates the collected selections and produces the immutable
// profile, moving the session to the dashboard phase. The persona chat is
// initialized as part of finalization; if the provider is unavailable the
// profile is still created and chat stays visibly disabled.
func (s *State) Finalize(ctx context.Context, name string) (*models.UserProfile, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseDetails {
		return nil, fmt.Errorf("%w: finalize from %s", ErrWrongPhase, s.phase)
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if s.tempPath == "" || s.tempSubPath == "" {
		return nil, ErrSelectionIncomplete
	}

	profile := &models.UserProfile{
		Name:     name,
		Language: s.language,
		PathType: s.tempPath,
		SubPath:  s.tempSubPath,
		Details:  models.ProfileDetails{Goal: "General Improvement"},
	}
	s.profile = profile
	s.phase = PhaseDashboard

	s.startPersonaSession(ctx)
	return profile, nil
}

// SwitchSubPath changes the active track from the dashboard. The persona
// session is re-created and the transcript is reset, so the new persona
// never converses against the old persona's history.
func (s *State) SwitchSubPath(ctx context.Context, sp models.SubPath) error {
	if _, ok := taxonomy.Family(sp); !ok {
		return fmt.Errorf("%w: sub-path %q", ErrUnknownValue, sp)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseDashboard {
		return fmt.Errorf("%w: switch sub-path from %s", ErrWrongPhase, s.phase)
	}
	if !taxonomy.BelongsTo(sp, s.profile.PathType) {
		return fmt.Errorf("%w: %s is not part of %s", ErrSubPathMismatch, sp, s.profile.PathType)
	}

	p := *s.profile
	p.SubPath = sp
	s.profile = &p

	s.startPersonaSession(ctx)
	return nil
}

// startPersonaSession (re)initializes the chat for the current profile and
// seeds the greeting turn. The greeting is synthesized locally and never
// sent to the provider. Callers must hold s.mu.
func (s *State) startPersonaSession(ctx context.Context) {
	s.transcript.Reset()
	s.gen++
	s.chatEnabled = false

	instruction := taxonomy.PersonaInstructionFor(s.profile.SubPath)
	effective := fmt.Sprintf("%s\n\nThe user's name is %s.", instruction, s.profile.Name)

	if err := s.manager.Initialize(ctx, effective); err != nil {
		if errors.Is(err, provider.ErrUnavailable) {
			s.logger.Warn("chat disabled: provider unavailable", zap.Error(err))
		} else {
			s.logger.Error("chat disabled: persona session initialization failed", zap.Error(err))
		}
		return
	}

	s.chatEnabled = true
	s.transcript.Append(chat.NewMessage(models.RoleModel, greetingFor(s.profile.SubPath, s.profile.Name)))
}

func greetingFor(sp models.SubPath, name string) string {
	if sp == models.SubPathKindergarten {
		return fmt.Sprintf("Hi %s! 🌟 I'm your magical friend! What do you want to play? 🎈", name)
	}
	track := strings.ReplaceAll(string(sp), "_", " ")
	return fmt.Sprintf("Hello %s. I am ready to assist you with your %s goals. How can I help?", name, track)
}

// SendMessage round-trips one user message through the persona session and
// appends both turns to the transcript. On any sequencing error the
// transcript is left unchanged; provider failures have already been
// degraded to the fallback reply by the manager.
func (s *State) SendMessage(ctx context.Context, text string) (*SendResult, error) {
	s.mu.Lock()
	if s.phase != PhaseDashboard {
		phase := s.phase
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: send from %s", ErrWrongPhase, phase)
	}
	gen := s.gen
	s.mu.Unlock()

	// The round trip runs outside s.mu so a second send is rejected by the
	// manager's in-flight slot instead of silently queueing here.
	userMsg := chat.NewMessage(models.RoleUser, text)
	reply, err := s.manager.Send(ctx, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, ErrSessionRestarted
	}

	replyMsg := chat.NewMessage(models.RoleModel, reply)
	s.transcript.Append(userMsg)
	s.transcript.Append(replyMsg)

	return &SendResult{User: userMsg, Reply: replyMsg}, nil
}

// Logout discards the profile, all temporary selections, the transcript,
// and the active session handle, returning to the entry phase.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manager.Close()
	s.transcript.Reset()
	s.gen++
	s.profile = nil
	s.tempPath = ""
	s.tempSubPath = ""
	s.chatEnabled = false
	s.phase = PhaseEntry
}

// Phase returns the current onboarding phase.
func (s *State) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Language returns the current language preference.
func (s *State) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Profile returns a copy of the finalized profile, or nil while onboarding.
func (s *State) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Theme resolves the active presentation theme from the finalized profile,
// falling back to the default theme during onboarding.
func (s *State) Theme() models.ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		return taxonomy.ThemeFor(s.profile.SubPath)
	}
	return taxonomy.DefaultTheme
}

// Transcript returns a copy of the visible turn history.
func (s *State) Transcript() []models.ChatMessage {
	return s.transcript.Messages()
}

// ChatEnabled reports whether the persona session initialized successfully
// for the current profile.
func (s *State) ChatEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatEnabled
}

// ChatState exposes the session manager's lifecycle state so the surface
// can gate the send affordance.
func (s *State) ChatState() chat.SessionState {
	return s.manager.State()
}

// Marketplace returns the catalog entries for the active sub-path, or nil
// while onboarding.
func (s *State) Marketplace() []models.MarketplaceItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	return taxonomy.ItemsFor(s.profile.SubPath)
}
