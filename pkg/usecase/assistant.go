package usecase

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/service/nlp"
	"github.com/waqt-lab/sawtak/pkg/service/speech"
	"github.com/waqt-lab/sawtak/pkg/utils/errutil"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

// apologyResponse is the reply for any contained handler failure. The
// user never sees raw error text.
const apologyResponse = "Désolé, une erreur s'est produite. Veuillez réessayer."

// AssistantUseCase runs the full command pipeline: understanding, action
// dispatch, history logging and speech rendering.
type AssistantUseCase struct {
	repo      interfaces.Repository
	processor *nlp.Processor
	renderer  *speech.Renderer
	now       func() time.Time
}

// Process handles one utterance end to end. It never returns an error:
// handler failures and panics are contained to a generic apology so the
// voice loop always has something to say. Every invocation appends
// exactly one history record.
func (u *AssistantUseCase) Process(ctx context.Context, utterance string) *model.CommandResult {
	processID := uuid.New().String()
	ctx = logging.With(ctx, logging.From(ctx).With("process_id", processID))

	res := u.processor.Process(utterance)
	intent := res.Classification.Intent

	entities := res.Entities.Clone()
	entities[types.SlotRawText] = res.RawText

	logging.From(ctx).Info("Command understood",
		"intent", intent.String(),
		"confidence", res.Classification.Confidence,
		"slots", len(res.Entities),
	)

	outcome := u.execute(ctx, intent, entities)

	record := &model.HistoryRecord{
		ProcessID: processID,
		Utterance: res.RawText,
		Intent:    intent.String(),
		Entities:  entities.JSON(),
		Response:  outcome.Response,
	}
	if _, err := u.repo.History().Append(ctx, record); err != nil {
		// The reply is already computed; a history failure must not
		// break the voice loop.
		_ = errutil.Handle(ctx, err, "failed to append history record")
	}

	return &model.CommandResult{
		Success:    outcome.Success,
		Intent:     intent,
		Confidence: res.Classification.Confidence,
		Entities:   entities,
		Response:   outcome.Response,
		Data:       outcome.Data,
		Speech:     u.renderer.Render(outcome.Response),
	}
}

// execute dispatches to the intent handler with panic and error
// containment.
func (u *AssistantUseCase) execute(ctx context.Context, intent types.Intent, entities model.EntityMap) (outcome model.ActionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			err := goerr.New("action handler panicked",
				goerr.V("intent", intent.String()), goerr.V("panic", r))
			u.capture(ctx, err)
			outcome = apology(intent)
		}
	}()

	out, err := u.dispatch(ctx, intent, entities)
	if err != nil {
		u.capture(ctx, goerr.Wrap(err, "action handler failed", goerr.V("intent", intent.String())))
		return apology(intent)
	}

	return out
}

// dispatch is the exhaustive intent switch. Every Intent constant has an
// arm; an unlisted value means a table and enum went out of sync, which
// is a bug worth surfacing.
func (u *AssistantUseCase) dispatch(ctx context.Context, intent types.Intent, entities model.EntityMap) (model.ActionOutcome, error) {
	switch intent {
	case types.IntentCreateReminder:
		return u.handleCreateReminder(ctx, entities)
	case types.IntentCallContact:
		return u.handleCallContact(ctx, entities)
	case types.IntentGetWeather:
		return u.handleGetWeather(ctx, entities)
	case types.IntentGetTime:
		return u.handleGetTime(ctx, entities)
	case types.IntentAddMedication:
		return u.handleAddMedication(ctx, entities)
	case types.IntentReadMessages:
		return u.handleReadMessages(ctx, entities)
	case types.IntentSendMessage:
		return u.handleSendMessage(ctx, entities)
	case types.IntentSetAlarm:
		return u.handleSetAlarm(ctx, entities)
	case types.IntentCheckAgenda:
		return u.handleCheckAgenda(ctx, entities)
	case types.IntentEmergencyAlert:
		return u.handleEmergencyAlert(ctx, entities)
	case types.IntentUnknown:
		return u.handleUnknown(ctx, entities)
	default:
		return model.ActionOutcome{}, goerr.New("unhandled intent", goerr.V("intent", intent.String()))
	}
}

func (u *AssistantUseCase) capture(ctx context.Context, err error) {
	sentry.CaptureException(err)
	_ = errutil.Handle(ctx, err, "command execution failed")
}

func apology(intent types.Intent) model.ActionOutcome {
	return model.ActionOutcome{
		Success:  false,
		Response: apologyResponse,
		Action:   intent.String(),
		Data:     map[string]any{},
	}
}
