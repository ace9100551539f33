package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/dictionary"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/session"

	"go.uber.org/zap"
)

// FormInput is one user action fed into the form. Exactly one of the
// fields is meaningful per call.
type FormInput struct {
	Value    string      // selected option or typed text
	PhotoID  string      // Telegram file id of an attached photo
	Skip     bool        // skip the optional photo step
	Back     bool        // return to the previous step
	Confirm  bool        // submit the draft
	Edit     bool        // pick a step to change from the confirmation screen
	EditStep domain.Step // the step chosen after Edit
}

// Prompt describes the bot's next message. The handler renders it to
// telebot keyboards; the form itself never touches the transport.
type Prompt struct {
	Text      string
	Options   []string // selection buttons for dictionary steps
	AllowSkip bool     // offer a skip button (photo step)
	Confirm   bool     // offer confirm/edit buttons
	Editable  bool     // offer the list of editable steps
	Done      bool     // report persisted, flow finished
	Cancelled bool     // draft discarded, flow finished
}

// FormService drives the multi-step report entry. All state lives in the
// session manager's drafts; methods are safe to call from telebot handlers.
type FormService struct {
	dict     *dictionary.Dictionary
	sessions *session.Manager
	reports  *ReportService
	logger   *zap.Logger
}

// NewFormService creates a new form service
func NewFormService(
	dict *dictionary.Dictionary,
	sessions *session.Manager,
	reports *ReportService,
	logger *zap.Logger,
) *FormService {
	return &FormService{
		dict:     dict,
		sessions: sessions,
		reports:  reports,
		logger:   logger,
	}
}

// Start begins a new report for the user, replacing any draft in progress.
func (s *FormService) Start(userID int64) Prompt {
	draft := s.sessions.Start(userID)

	s.logger.Info("Report started", zap.Int64("user_id", userID))

	prompt := s.promptFor(draft)
	prompt.Text = "📝 *New Fuel Report*\n\n" + prompt.Text
	return prompt
}

// Cancel discards the user's draft from any step.
func (s *FormService) Cancel(userID int64) Prompt {
	s.sessions.Cancel(userID)
	return Prompt{
		Text:      "❌ *Filling cancelled*\n\nUse the menu to start a new report.",
		Cancelled: true,
	}
}

// Handle applies one input to the user's draft and returns the next prompt.
// A domain.ValidationError keeps the draft on the same step; any other
// error means the confirmation save failed and the draft is retained.
func (s *FormService) Handle(userID int64, in FormInput) (Prompt, error) {
	draft := s.sessions.Get(userID)
	if draft == nil {
		return Prompt{}, domain.ErrNoDraft
	}

	if in.Back {
		return s.handleBack(draft), nil
	}

	// Any handled input keeps the draft alive, rejected ones included.
	s.sessions.Touch(userID)

	return s.handleStep(draft, in)
}

func (s *FormService) handleStep(draft *domain.Draft, in FormInput) (Prompt, error) {
	switch draft.Step {
	case domain.StepBoat:
		if !s.dict.IsValid(dictionary.CategoryBoat, in.Value) {
			return s.promptFor(draft), domain.ValidationError("unknown boat: " + in.Value)
		}
		draft.BoatName = in.Value
		return s.advance(draft, domain.StepCaptain, "✅ Boat: *"+in.Value+"*"), nil

	case domain.StepCaptain:
		if !s.dict.IsValid(dictionary.CategoryCaptain, in.Value) {
			return s.promptFor(draft), domain.ValidationError("unknown captain: " + in.Value)
		}
		draft.CaptainName = in.Value
		return s.advance(draft, domain.StepProgram, "✅ Captain: *"+in.Value+"*"), nil

	case domain.StepProgram:
		if !s.dict.IsValid(dictionary.CategoryProgram, in.Value) {
			return s.promptFor(draft), domain.ValidationError("unknown program: " + in.Value)
		}
		draft.ProgramName = in.Value
		if in.Value == domain.PrivateTourProgram {
			// Private tour needs a route label before the pier step.
			draft.PrivateRoute = ""
			return s.advance(draft, domain.StepPrivateRoute, "✅ Program: *N/A (Private tour)*"), nil
		}
		draft.PrivateRoute = ""
		return s.advance(draft, domain.StepPier, "✅ Program: *"+in.Value+"*"), nil

	case domain.StepPrivateRoute:
		route := strings.TrimSpace(in.Value)
		if route == "" {
			return s.promptFor(draft), domain.ValidationError("empty private tour route")
		}
		draft.PrivateRoute = route
		return s.advance(draft, domain.StepPier, "✅ Private tour: *"+route+"*"), nil

	case domain.StepPier:
		if !s.dict.IsValid(dictionary.CategoryPier, in.Value) {
			return s.promptFor(draft), domain.ValidationError("unknown pier: " + in.Value)
		}
		draft.PierName = in.Value
		return s.advance(draft, domain.StepLiters, "✅ Pier: *"+in.Value+"*"), nil

	case domain.StepLiters:
		liters, err := parseLiters(in.Value)
		if err != nil {
			return s.promptFor(draft), err
		}
		draft.Liters = liters
		ack := fmt.Sprintf("✅ Used: *%s* L", formatLiters(liters))
		return s.advance(draft, domain.StepPhotos, ack), nil

	case domain.StepPhotos:
		return s.handlePhotos(draft, in)

	case domain.StepConfirm:
		return s.handleConfirm(draft, in)
	}

	return s.promptFor(draft), domain.ValidationError("unexpected input")
}

// handlePhotos accepts up to two attachments: the first is the odometer,
// the second the receipt. Skip advances unconditionally.
func (s *FormService) handlePhotos(draft *domain.Draft, in FormInput) (Prompt, error) {
	switch {
	case in.Skip:
		return s.advance(draft, domain.StepConfirm, "⏭ Photos: *skipped*"), nil

	case in.PhotoID != "":
		if draft.OdometerPhotoID == "" {
			draft.OdometerPhotoID = in.PhotoID
			if draft.Editing {
				return s.advance(draft, domain.StepConfirm, "✅ Odometer photo: *uploaded*"), nil
			}
			prompt := s.promptFor(draft)
			prompt.Text = "✅ Odometer photo: *uploaded*\n\n📷 *Receipt photo (optional):*\n\nSend photo or press 'Skip':"
			return prompt, nil
		}
		draft.ReceiptPhotoID = in.PhotoID
		return s.advance(draft, domain.StepConfirm, "✅ Receipt photo: *uploaded*"), nil
	}

	return s.promptFor(draft), domain.ValidationError("send a photo or press 'Skip'")
}

func (s *FormService) handleConfirm(draft *domain.Draft, in FormInput) (Prompt, error) {
	switch {
	case in.Confirm:
		if _, err := s.reports.Submit(draft); err != nil {
			// Draft stays on the confirmation step for another attempt.
			return s.promptFor(draft), err
		}
		s.sessions.Cancel(draft.UserID)
		return Prompt{
			Text: "✅ *Report saved successfully!*\n\nThank you for filling out.",
			Done: true,
		}, nil

	case in.Edit && in.EditStep != "":
		if !editableStep(in.EditStep) {
			return s.promptFor(draft), domain.ValidationError("unknown step to edit")
		}
		draft.Step = in.EditStep
		draft.Editing = true
		prompt := s.promptFor(draft)
		prompt.Text = "✏️ *Edit report*\n\n" + prompt.Text
		return prompt, nil

	case in.Edit:
		prompt := s.promptFor(draft)
		prompt.Editable = true
		return prompt, nil
	}

	return s.promptFor(draft), domain.ValidationError("confirm, edit or cancel")
}

// advance moves the draft forward and returns the next prompt prefixed
// with the acknowledgment line. While editing a single field the flow
// jumps straight back to the confirmation screen.
func (s *FormService) advance(draft *domain.Draft, next domain.Step, ack string) Prompt {
	if draft.Editing && next != domain.StepPrivateRoute {
		// Selecting N/A while editing still has to collect the route.
		draft.Editing = false
		draft.Step = domain.StepConfirm
	} else {
		draft.Step = next
		draft.History = append(draft.History, next)
	}

	prompt := s.promptFor(draft)
	prompt.Text = ack + "\n\n" + prompt.Text
	return prompt
}

func (s *FormService) handleBack(draft *domain.Draft) Prompt {
	if len(draft.History) <= 1 {
		return s.Cancel(draft.UserID)
	}

	draft.History = draft.History[:len(draft.History)-1]
	draft.Step = draft.History[len(draft.History)-1]
	s.sessions.Touch(draft.UserID)
	return s.promptFor(draft)
}

// promptFor builds the prompt for the draft's current step.
func (s *FormService) promptFor(draft *domain.Draft) Prompt {
	switch draft.Step {
	case domain.StepBoat:
		return Prompt{Text: "🚤 *Select boat:*", Options: s.dict.Boats()}
	case domain.StepCaptain:
		return Prompt{Text: "👨‍✈️ *Select captain:*", Options: s.dict.Captains()}
	case domain.StepProgram:
		return Prompt{Text: "🏝 *Select program:*", Options: s.dict.Programs()}
	case domain.StepPrivateRoute:
		return Prompt{Text: "🏝 *Private tour route:*\n\nEnter the route:"}
	case domain.StepPier:
		return Prompt{Text: "⚓ *Select pier:*", Options: s.dict.Piers()}
	case domain.StepLiters:
		return Prompt{Text: "⛽ *Fuel used:*\n\nEnter liters:"}
	case domain.StepPhotos:
		return Prompt{
			Text:      "📷 *Odometer photo (optional):*\n\nSend photo or press 'Skip':",
			AllowSkip: true,
		}
	case domain.StepConfirm:
		return Prompt{
			Text:    s.summary(draft) + "\n\n*Confirm submission?*",
			Confirm: true,
		}
	}
	return Prompt{Text: "Use the menu to start a new report."}
}

// summary renders the draft for the confirmation screen.
func (s *FormService) summary(draft *domain.Draft) string {
	program := draft.ProgramName
	if draft.PrivateRoute != "" {
		program += " → *" + draft.PrivateRoute + "*"
	}

	photos := "—"
	if draft.OdometerPhotoID != "" || draft.ReceiptPhotoID != "" {
		photos = "✅"
	}

	return fmt.Sprintf(
		"📋 *Report Summary*\n\n"+
			"🚤 *Boat:* %s\n"+
			"👨‍✈️ *Captain:* %s\n"+
			"🏝 *Program:* %s\n"+
			"⚓ *Pier:* %s\n\n"+
			"⛽ *Used:* %s L\n"+
			"📷 *Photos:* %s",
		draft.BoatName, draft.CaptainName, program, draft.PierName,
		formatLiters(draft.Liters), photos,
	)
}

// EditableSteps lists the steps offered on the edit keyboard.
func EditableSteps() []domain.Step {
	return []domain.Step{
		domain.StepBoat,
		domain.StepCaptain,
		domain.StepProgram,
		domain.StepPier,
		domain.StepLiters,
		domain.StepPhotos,
	}
}

func editableStep(step domain.Step) bool {
	for _, s := range EditableSteps() {
		if s == step {
			return true
		}
	}
	return false
}

// parseLiters accepts a positive finite number, tolerating a comma decimal
// mark.
func parseLiters(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	liters, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(liters) || math.IsInf(liters, 0) {
		return 0, domain.ValidationError("liters must be a number")
	}
	if liters <= 0 {
		return 0, domain.ValidationError("liters must be positive")
	}
	return liters, nil
}

func formatLiters(liters float64) string {
	return strconv.FormatFloat(liters, 'f', -1, 64)
}
