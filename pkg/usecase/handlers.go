package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// maxListedContacts caps the contact enumeration in the slot-filling
// prompt.
const maxListedContacts = 5

// maxReadMessages caps how many messages one reading announces.
const maxReadMessages = 5

func (u *AssistantUseCase) handleCreateReminder(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	title, _ := entities.Get(types.SlotReminderTitle)
	at, _ := entities.Get(types.SlotTime)

	if title == "" {
		return model.ActionOutcome{
			Success:  false,
			Response: "Quel rappel souhaitez-vous créer ? Dites par exemple : rappelle-moi de prendre mon médicament à 8 heures.",
			Action:   types.IntentCreateReminder.String(),
			Data:     map[string]any{"needs": string(types.SlotReminderTitle)},
		}, nil
	}

	storedTime := at
	if storedTime == "" {
		storedTime = "non défini"
	}

	created, err := u.repo.Reminder().Create(ctx, &model.Reminder{
		Title: title,
		Time:  storedTime,
		Kind:  types.ReminderGeneral,
	})
	if err != nil {
		return model.ActionOutcome{}, err
	}

	timeText := ""
	if at != "" {
		timeText = " à " + at
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("D'accord ! J'ai créé un rappel : %s%s. Je vous préviendrai au moment voulu.", title, timeText),
		Action:   types.IntentCreateReminder.String(),
		Data:     map[string]any{"reminder_id": created.ID, "title": title, "time": at},
	}, nil
}

func (u *AssistantUseCase) handleCallContact(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	name, _ := entities.Get(types.SlotContact)

	if name == "" {
		contacts, err := u.repo.Contact().List(ctx)
		if err != nil {
			return model.ActionOutcome{}, err
		}
		if len(contacts) > maxListedContacts {
			contacts = contacts[:maxListedContacts]
		}

		names := make([]string, 0, len(contacts))
		for _, c := range contacts {
			names = append(names, c.Name)
		}

		return model.ActionOutcome{
			Success:  false,
			Response: fmt.Sprintf("Qui souhaitez-vous appeler ? Vos contacts sont : %s.", strings.Join(names, ", ")),
			Action:   types.IntentCallContact.String(),
			Data:     map[string]any{"needs": string(types.SlotContact), "available_contacts": names},
		}, nil
	}

	contact, err := u.repo.Contact().FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return model.ActionOutcome{
				Success:  false,
				Response: fmt.Sprintf("Je n'ai pas trouvé de contact nommé %s. Voulez-vous essayer un autre nom ?", name),
				Action:   types.IntentCallContact.String(),
				Data:     map[string]any{"searched": name},
			}, nil
		}
		return model.ActionOutcome{}, err
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("J'appelle %s au %s. L'appel est en cours.", contact.Name, contact.Phone),
		Action:   types.IntentCallContact.String(),
		Data:     map[string]any{"contact_name": contact.Name, "phone": contact.Phone},
	}, nil
}

func (u *AssistantUseCase) handleGetWeather(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	weather := model.SimulatedWeather()

	return model.ActionOutcome{
		Success: true,
		Response: fmt.Sprintf(
			"Aujourd'hui à %s, il fait %d degrés, le temps est %s avec une humidité de %d pourcent. C'est une belle journée !",
			weather.City, weather.Temperature, weather.Condition, weather.Humidity),
		Action: types.IntentGetWeather.String(),
		Data: map[string]any{
			"temperature": weather.Temperature,
			"condition":   weather.Condition,
			"humidity":    weather.Humidity,
			"city":        weather.City,
		},
	}, nil
}

func (u *AssistantUseCase) handleGetTime(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	now := u.now()

	timeText := now.Format("15") + " heures pile"
	if now.Minute() != 0 {
		timeText = fmt.Sprintf("%s heures et %s minutes", now.Format("15"), now.Format("04"))
	}

	var period string
	switch {
	case now.Hour() < 12:
		period = "Bon matin !"
	case now.Hour() < 18:
		period = "Bon après-midi !"
	default:
		period = "Bonne soirée !"
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("Il est actuellement %s. %s", timeText, period),
		Action:   types.IntentGetTime.String(),
		Data:     map[string]any{"time": now.Format("15:04"), "period": period},
	}, nil
}

func (u *AssistantUseCase) handleAddMedication(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	name, _ := entities.Get(types.SlotMedication)
	at, _ := entities.Get(types.SlotTime)

	if name == "" {
		return model.ActionOutcome{
			Success:  false,
			Response: "Quel médicament souhaitez-vous ajouter ? Dites par exemple : ajouter Doliprane à 8 heures.",
			Action:   types.IntentAddMedication.String(),
			Data:     map[string]any{"needs": string(types.SlotMedication)},
		}, nil
	}

	schedule := at
	if schedule == "" {
		schedule = "à définir"
	}

	created, err := u.repo.Medication().Create(ctx, &model.Medication{
		Name:     name,
		Schedule: schedule,
	})
	if err != nil {
		return model.ActionOutcome{}, err
	}

	timeText := ""
	if at != "" {
		timeText = " à prendre à " + at
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("J'ai ajouté le médicament %s%s à votre liste. N'oubliez pas de le prendre !", name, timeText),
		Action:   types.IntentAddMedication.String(),
		Data:     map[string]any{"medication_id": created.ID, "name": name},
	}, nil
}

func (u *AssistantUseCase) handleReadMessages(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	filter, _ := entities.Get(types.SlotContact)
	filter = strings.TrimSpace(filter)

	// An unknown contact name does not fail the reading: all messages
	// are announced instead, with an explanation prefix.
	var filtered *model.Contact
	if filter != "" {
		found, err := u.repo.Contact().FindByName(ctx, filter)
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return model.ActionOutcome{}, err
		}
		filtered = found
	}

	var contactID int64
	if filtered != nil {
		contactID = filtered.ID
	}

	messages, err := u.repo.Message().List(ctx, contactID, maxReadMessages)
	if err != nil {
		return model.ActionOutcome{}, err
	}

	prefix := ""
	switch {
	case filter != "" && filtered != nil:
		prefix = fmt.Sprintf("Messages de %s : ", filtered.Name)
	case filter != "" && filtered == nil:
		prefix = fmt.Sprintf("Je n'ai pas trouvé de contact nommé %s. Voici tous vos messages : ", filter)
	}

	if len(messages) == 0 {
		response := "Vous n'avez aucun message pour le moment."
		if filter != "" && filtered != nil {
			response = fmt.Sprintf("Aucun message de %s pour le moment.", filtered.Name)
		}
		return model.ActionOutcome{
			Success:  true,
			Response: response,
			Action:   types.IntentReadMessages.String(),
			Data:     map[string]any{"messages": []any{}},
		}, nil
	}

	contacts, err := u.repo.Contact().List(ctx)
	if err != nil {
		return model.ActionOutcome{}, err
	}
	nameByID := make(map[int64]string, len(contacts))
	for _, c := range contacts {
		nameByID[c.ID] = c.Name
	}

	texts := make([]string, 0, len(messages))
	data := make([]map[string]any, 0, len(messages))
	for _, msg := range messages {
		sender := "Inconnu"
		if name, ok := nameByID[msg.ContactID]; ok {
			sender = name
		}
		direction := "de"
		if msg.Direction == types.MessageSent {
			direction = "envoyé à"
		}
		texts = append(texts, fmt.Sprintf("Message %s %s : %s", direction, sender, msg.Content))
		data = append(data, map[string]any{
			"from":      sender,
			"content":   msg.Content,
			"direction": msg.Direction.String(),
			"date":      msg.CreatedAt.Format("2006-01-02T15:04:05"),
		})
	}

	plural := ""
	if len(messages) > 1 {
		plural = "s"
	}
	response := fmt.Sprintf("%sVous avez %d message%s. %s",
		prefix, len(messages), plural, strings.Join(texts, " … "))

	return model.ActionOutcome{
		Success:  true,
		Response: response,
		Action:   types.IntentReadMessages.String(),
		Data:     map[string]any{"messages": data},
	}, nil
}

func (u *AssistantUseCase) handleSendMessage(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	name, _ := entities.Get(types.SlotContact)
	content, _ := entities.Get(types.SlotMessageBody)

	if name == "" {
		return model.ActionOutcome{
			Success:  false,
			Response: "À qui souhaitez-vous envoyer un message ?",
			Action:   types.IntentSendMessage.String(),
			Data:     map[string]any{"needs": string(types.SlotContact)},
		}, nil
	}

	if content == "" {
		return model.ActionOutcome{
			Success:  false,
			Response: fmt.Sprintf("Que souhaitez-vous dire à %s ?", name),
			Action:   types.IntentSendMessage.String(),
			Data:     map[string]any{"needs": string(types.SlotMessageBody), "contact": name},
		}, nil
	}

	// A message to an unknown name is still stored, without a contact
	// link, under the spoken name.
	var contactID int64
	displayName := name
	contact, err := u.repo.Contact().FindByName(ctx, name)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return model.ActionOutcome{}, err
	}
	if contact != nil {
		contactID = contact.ID
		displayName = contact.Name
	}

	if _, err := u.repo.Message().Create(ctx, &model.Message{
		ContactID: contactID,
		Content:   content,
		Direction: types.MessageSent,
	}); err != nil {
		return model.ActionOutcome{}, err
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("Message envoyé à %s : \"%s\"", displayName, content),
		Action:   types.IntentSendMessage.String(),
		Data:     map[string]any{"contact": displayName, "content": content},
	}, nil
}

func (u *AssistantUseCase) handleSetAlarm(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	at, _ := entities.Get(types.SlotTime)

	if at == "" {
		return model.ActionOutcome{
			Success:  false,
			Response: "À quelle heure souhaitez-vous l'alarme ? Dites par exemple : mets une alarme à 7 heures.",
			Action:   types.IntentSetAlarm.String(),
			Data:     map[string]any{"needs": string(types.SlotTime)},
		}, nil
	}

	created, err := u.repo.Reminder().Create(ctx, &model.Reminder{
		Title: "⏰ Alarme à " + at,
		Time:  at,
		Kind:  types.ReminderAlarm,
	})
	if err != nil {
		return model.ActionOutcome{}, err
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("L'alarme est réglée pour %s. Je vous réveillerai à l'heure.", at),
		Action:   types.IntentSetAlarm.String(),
		Data:     map[string]any{"time": at, "reminder_id": created.ID},
	}, nil
}

func (u *AssistantUseCase) handleCheckAgenda(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	reminders, err := u.repo.Reminder().List(ctx, false)
	if err != nil {
		return model.ActionOutcome{}, err
	}
	medications, err := u.repo.Medication().List(ctx)
	if err != nil {
		return model.ActionOutcome{}, err
	}

	items := make([]string, 0, len(reminders)+len(medications))
	for _, r := range reminders {
		items = append(items, fmt.Sprintf("Rappel : %s à %s", r.Title, r.Time))
	}
	for _, m := range medications {
		items = append(items, fmt.Sprintf("Médicament : %s (%s)", m.Name, m.Schedule))
	}

	if len(items) == 0 {
		return model.ActionOutcome{
			Success:  true,
			Response: "Votre agenda est vide pour le moment. Pas de rendez-vous ni de rappels prévus.",
			Action:   types.IntentCheckAgenda.String(),
			Data:     map[string]any{"items": []any{}},
		}, nil
	}

	return model.ActionOutcome{
		Success:  true,
		Response: fmt.Sprintf("Voici votre programme : %s.", strings.Join(items, ". ")),
		Action:   types.IntentCheckAgenda.String(),
		Data: map[string]any{
			"reminders":   len(reminders),
			"medications": len(medications),
			"items":       items,
		},
	}, nil
}

func (u *AssistantUseCase) handleEmergencyAlert(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	contacts, err := u.repo.Contact().ListEmergency(ctx)
	if err != nil {
		return model.ActionOutcome{}, err
	}

	names := make([]string, 0, len(contacts))
	info := make([]map[string]any, 0, len(contacts))
	for _, c := range contacts {
		names = append(names, c.Name)
		info = append(info, map[string]any{"name": c.Name, "phone": c.Phone})
	}

	return model.ActionOutcome{
		Success: true,
		Response: fmt.Sprintf(
			"🚨 ALERTE URGENCE ! J'ai prévenu vos contacts d'urgence : %s. Restez calme, de l'aide arrive. Le SAMU a été contacté au 190.",
			strings.Join(names, ", ")),
		Action: types.IntentEmergencyAlert.String(),
		Data:   map[string]any{"emergency_contacts": info, "samu_called": true},
	}, nil
}

func (u *AssistantUseCase) handleUnknown(ctx context.Context, entities model.EntityMap) (model.ActionOutcome, error) {
	return model.ActionOutcome{
		Success: false,
		Response: "Je n'ai pas bien compris votre demande. Pouvez-vous répéter s'il vous plaît ? " +
			"Vous pouvez me demander par exemple : l'heure, la météo, appeler quelqu'un, " +
			"créer un rappel, ou lire vos messages.",
		Action: types.IntentUnknown.String(),
		Data:   map[string]any{},
	}, nil
}
