package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

// NotifyTarget - цель одного оповещения: контакт или локальные службы
type NotifyTarget struct {
	Channel   string
	Name      string
	Phone     string
	ServiceID string
}

// NotifyPayload - данные, передаваемые в канал доставки
type NotifyPayload struct {
	UserID   string
	Location *models.Location
	Message  string
}

// DeliveryResult - итог попытки доставки, как его сообщил адаптер канала
type DeliveryResult struct {
	Outcome    string
	RetryCount int
}

// ChannelAdapter определяет контракт канала доставки оповещений.
// Notify никогда не возвращает ошибку: сбои доставки - это данные
// (Outcome = failed), чтобы один недоступный контакт не блокировал
// оповещение остальных. Ретраи, если есть, - забота самого адаптера;
// движок лишь записывает сообщенный RetryCount.
type ChannelAdapter interface {
	Notify(ctx context.Context, target NotifyTarget, payload NotifyPayload) DeliveryResult
}

// AlertDispatchEngine определяет контракт движка рассылки тревог
type AlertDispatchEngine interface {
	Dispatch(ctx context.Context, profile *models.UserSafetyProfile, decision models.EmergencyDecision, current *models.Location, originatingMessage string) (*models.EmergencyEvent, error)
}

// EmergencyRepository определяет контракт хранилища экстренных событий
type EmergencyRepository interface {
	SaveEvent(ctx context.Context, event *models.EmergencyEvent) error
	GetEvent(ctx context.Context, id uuid.UUID) (*models.EmergencyEvent, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status string) error
}

// SafeZoneRepository определяет контракт реестра безопасных зон
type SafeZoneRepository interface {
	ListSafeZones(ctx context.Context) ([]models.SafeZone, error)
	GetCatalogFromCache(ctx context.Context) ([]models.SafeZone, error)
	SetCatalogCache(ctx context.Context, zones []models.SafeZone) error
}

type dispatchEngine struct {
	contacts ChannelAdapter
	local    ChannelAdapter
	zones    SafeZoneRepository
	events   EmergencyRepository
	logger   *logrus.Logger
	cfg      *config.Config

	// inFlight хранит пользователей с незавершенной диспетчеризацией.
	// Повторная классификация того же пользователя в это окно подавляется,
	// а не ставится в очередь: это почти наверняка та же тревога.
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewDispatchEngine(contacts, local ChannelAdapter, zones SafeZoneRepository, events EmergencyRepository, logger *logrus.Logger, cfg *config.Config) AlertDispatchEngine {
	return &dispatchEngine{
		contacts: contacts,
		local:    local,
		zones:    zones,
		events:   events,
		logger:   logger,
		cfg:      cfg,
		inFlight: make(map[string]bool),
	}
}

// Dispatch оповещает все цели пользователя и собирает EmergencyEvent.
// Возвращает (nil, nil), если для пользователя уже идет диспетчеризация, -
// окно дедупликации закрывается по ее завершении, успешном или нет.
// Сбой отдельного канала записывается как Outcome failed и не прерывает
// рассылку остальным; ошибкой заканчивается только невозможность собрать
// список целей (ErrConfiguration).
func (e *dispatchEngine) Dispatch(ctx context.Context, profile *models.UserSafetyProfile, decision models.EmergencyDecision, current *models.Location, originatingMessage string) (*models.EmergencyEvent, error) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "Dispatch",
		"user_id": profile.UserID,
		"source":  decision.Source,
	})

	if !decision.IsEmergency {
		return nil, fmt.Errorf("service: dispatch called for non-emergency decision: %w", ErrValidation)
	}

	e.mu.Lock()
	if e.inFlight[profile.UserID] {
		e.mu.Unlock()
		log.Warn("Dispatch already in flight for user, coalescing trigger")
		return nil, nil
	}
	e.inFlight[profile.UserID] = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.inFlight, profile.UserID)
		e.mu.Unlock()
	}()

	targets, err := e.buildTargets(profile)
	if err != nil {
		log.WithError(err).Error("Failed to build target list")
		return nil, err
	}

	location := current
	if location == nil {
		location = profile.CurrentLocation
	}

	payload := NotifyPayload{
		UserID:   profile.UserID,
		Location: location,
		Message:  originatingMessage,
	}

	log.WithField("targets", len(targets)).Info("Dispatching emergency alerts")

	// Цели независимы - оповещаем параллельно, но результаты кладем по
	// индексу цели, чтобы порядок в событии совпадал с порядком перечисления.
	results := make([]models.AlertDispatchResult, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target NotifyTarget) {
			defer wg.Done()
			attemptedAt := time.Now().UTC()
			delivery := e.adapterFor(target).Notify(ctx, target, payload)
			results[i] = models.AlertDispatchResult{
				Channel:     target.Channel,
				TargetName:  target.Name,
				AttemptedAt: attemptedAt,
				Outcome:     delivery.Outcome,
				RetryCount:  delivery.RetryCount,
			}
		}(i, target)
	}
	wg.Wait()

	event := &models.EmergencyEvent{
		ID:                  uuid.New(),
		UserID:              profile.UserID,
		TriggeredAt:         time.Now().UTC(),
		TriggerSource:       decision.Source,
		OriginatingMessage:  originatingMessage,
		Location:            location,
		Status:              models.EmergencyStatusActive,
		DispatchResults:     results,
		SafeZoneSuggestions: e.suggestions(ctx, location, log),
	}

	if err := e.events.SaveEvent(ctx, event); err != nil {
		// Событие уже разослано - отдаем его вызывающему, потерю записи
		// только логируем.
		log.WithError(err).Error("Failed to persist emergency event")
	}

	log.WithField("event_id", event.ID).Info("Emergency dispatch completed")
	return event, nil
}

// buildTargets собирает снимок целей на момент диспетчеризации:
// контакты по возрастанию приоритета, затем синтетическая цель
// локальных экстренных служб.
func (e *dispatchEngine) buildTargets(profile *models.UserSafetyProfile) ([]NotifyTarget, error) {
	contacts := make([]models.EmergencyContact, len(profile.EmergencyContacts))
	copy(contacts, profile.EmergencyContacts)
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Priority < contacts[j].Priority
	})

	targets := make([]NotifyTarget, 0, len(contacts)+1)
	for _, c := range contacts {
		targets = append(targets, NotifyTarget{
			Channel: models.ChannelContact,
			Name:    c.Name,
			Phone:   c.Phone,
		})
	}

	if e.cfg.LocalServicesID != "" {
		targets = append(targets, NotifyTarget{
			Channel:   models.ChannelLocalServices,
			Name:      e.cfg.LocalServicesName,
			ServiceID: e.cfg.LocalServicesID,
		})
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("service: profile %s has no emergency contacts and no local services configured: %w", profile.UserID, ErrConfiguration)
	}
	return targets, nil
}

func (e *dispatchEngine) adapterFor(target NotifyTarget) ChannelAdapter {
	if target.Channel == models.ChannelLocalServices {
		return e.local
	}
	return e.contacts
}

// suggestions запрашивает ближайшие безопасные зоны. Без известной точки
// или при недоступном реестре возвращает пустой список - подсказки не
// должны срывать рассылку тревоги.
func (e *dispatchEngine) suggestions(ctx context.Context, location *models.Location, log *logrus.Entry) []models.RankedSafeZone {
	if location == nil {
		return []models.RankedSafeZone{}
	}

	zones, err := e.zones.GetCatalogFromCache(ctx)
	if err != nil || zones == nil {
		zones, err = e.zones.ListSafeZones(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to load safe zone catalog for suggestions")
			return []models.RankedSafeZone{}
		}
		if cacheErr := e.zones.SetCatalogCache(ctx, zones); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to cache safe zone catalog")
		}
	}

	ranked := RankSafeZones(*location, zones, "")
	limit := e.cfg.MaxSafeZoneSuggestions
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
