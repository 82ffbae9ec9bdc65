package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	alertQueueKey = "emergency_alerts"
)

// localServicesAlert - событие очереди оповещения локальных служб
type localServicesAlert struct {
	UserID    string           `json:"user_id"`
	ServiceID string           `json:"service_id"`
	Message   string           `json:"message"`
	Location  *models.Location `json:"location,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// LocalServicesNotifier - канал оповещения локальных экстренных служб.
// Доставка асинхронная: событие кладется в очередь Redis, его забирает
// AlertForwardWorker. Успешная постановка в очередь дает Outcome pending.
type LocalServicesNotifier struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

func NewLocalServicesNotifier(client *redis.Client, logger *logrus.Logger) *LocalServicesNotifier {
	return &LocalServicesNotifier{
		redisClient: client,
		logger:      logger,
	}
}

// Notify ставит оповещение в очередь. Сбой очереди возвращается как
// Outcome failed, наружу ошибки не выходят.
func (n *LocalServicesNotifier) Notify(ctx context.Context, target service.NotifyTarget, payload service.NotifyPayload) service.DeliveryResult {
	log := n.logger.WithField("channel", "local-services").WithField("service_id", target.ServiceID)

	event := localServicesAlert{
		UserID:    payload.UserID,
		ServiceID: target.ServiceID,
		Message:   payload.Message,
		Location:  payload.Location,
		Timestamp: time.Now().UTC(),
	}

	raw, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to marshal local services alert")
		return service.DeliveryResult{Outcome: models.OutcomeFailed}
	}

	// LPUSH в левую часть списка, воркер забирает BRPop с правой
	if err := n.redisClient.LPush(ctx, alertQueueKey, raw).Err(); err != nil {
		log.WithError(err).Error("Failed to enqueue local services alert")
		return service.DeliveryResult{Outcome: models.OutcomeFailed}
	}

	log.Info("Local services alert enqueued")
	return service.DeliveryResult{Outcome: models.OutcomePending}
}
