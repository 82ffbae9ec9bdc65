package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

// smsAlertPayload - тело запроса к SMS-шлюзу
type smsAlertPayload struct {
	UserID    string           `json:"user_id"`
	Contact   string           `json:"contact"`
	Phone     string           `json:"phone"`
	Message   string           `json:"message"`
	Location  *models.Location `json:"location,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// SMSGatewayNotifier - канал оповещения экстренных контактов через внешний
// SMS-шлюз. Реализует service.ChannelAdapter: сбои доставки возвращаются
// как Outcome failed, наружу ошибки не выходят.
type SMSGatewayNotifier struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewSMSGatewayNotifier(cfg *config.Config, logger *logrus.Logger) *SMSGatewayNotifier {
	return &SMSGatewayNotifier{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.AlertTimeout,
		},
	}
}

// Notify отправляет оповещение одному контакту с повторами и
// экспоненциальной задержкой. RetryCount - число выполненных повторов.
func (n *SMSGatewayNotifier) Notify(ctx context.Context, target service.NotifyTarget, payload service.NotifyPayload) service.DeliveryResult {
	log := n.logger.WithField("channel", "sms").WithField("target", target.Name)

	if n.cfg.SMSGatewayURL == "" {
		log.Warn("SMS gateway URL is not configured, skipping delivery")
		return service.DeliveryResult{Outcome: models.OutcomeFailed}
	}

	body, err := json.Marshal(smsAlertPayload{
		UserID:    payload.UserID,
		Contact:   target.Name,
		Phone:     target.Phone,
		Message:   payload.Message,
		Location:  payload.Location,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal SMS alert payload")
		return service.DeliveryResult{Outcome: models.OutcomeFailed}
	}

	maxRetries := n.cfg.AlertMaxRetries
	baseDelay := n.cfg.AlertBaseDelay

	for i := 0; i < maxRetries; i++ {
		delivered := n.attempt(ctx, body, log, maxRetries-1-i)
		if delivered {
			log.Info("SMS alert delivered")
			return service.DeliveryResult{Outcome: models.OutcomeDelivered, RetryCount: i}
		}
		select {
		case <-ctx.Done():
			log.Warn("SMS delivery canceled")
			return service.DeliveryResult{Outcome: models.OutcomeFailed, RetryCount: i}
		case <-time.After(baseDelay):
		}
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver SMS alert after %d attempts", maxRetries)
	return service.DeliveryResult{Outcome: models.OutcomeFailed, RetryCount: maxRetries - 1}
}

func (n *SMSGatewayNotifier) attempt(ctx context.Context, body []byte, log *logrus.Entry, retriesLeft int) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.SMSGatewayURL, bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Errorf("Failed to create SMS gateway request. Retries left: %d", retriesLeft)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если ALERT_SECRET задан
	if n.cfg.AlertSecret != "" {
		req.Header.Set("X-Alert-Signature", generateHMACSHA256(body, n.cfg.AlertSecret))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warnf("Failed to send SMS alert. Retries left: %d", retriesLeft)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true
	}
	log.Warnf("SMS gateway returned status %d. Retries left: %d", resp.StatusCode, retriesLeft)
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
