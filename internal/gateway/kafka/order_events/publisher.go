package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/metrics"
	"courier-network/pkg/logger"

	"github.com/IBM/sarama"
)

// enqueueTimeout сколько запрос ждет места в буфере продюсера.
const enqueueTimeout = 200 * time.Millisecond

var errEnqueueTimeout = errors.New("producer input buffer is full")

// Publisher пишет события смены статуса в Kafka. Ошибка публикации не
// откатывает смену статуса: она логируется и считается в метрике.
// Результаты доставки читаются фоновой горутиной до закрытия продюсера.
type Publisher struct {
	producer producer
	topic    string
	log      handlerLogger
}

func New(log handlerLogger, producer producer, topic string) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		log:      log.With(logger.NewField("topic", topic)),
	}

	go p.drain(producer.Successes(), producer.Errors())

	return p
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) {
	metrics.OrderStatusChangesTotal.WithLabelValues(event.Status.String()).Inc()

	eventLog := p.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
	)

	payload, err := json.Marshal(FromDomain(event))
	if err != nil {
		metrics.OrderEventsPublishFailedTotal.Inc()
		eventLog.With(logger.NewField("error", err)).Error("order.status.changed marshal failed")
		return
	}

	// ключ по заказу: события одного заказа попадают в одну партицию по порядку
	msg := &sarama.ProducerMessage{
		Topic:    p.topic,
		Key:      sarama.StringEncoder(event.OrderID),
		Value:    sarama.ByteEncoder(payload),
		Metadata: event,
	}

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case p.producer.Input() <- msg:
	case <-ctx.Done():
		metrics.OrderEventsPublishFailedTotal.Inc()
		eventLog.With(logger.NewField("error", ctx.Err())).Error("order.status.changed enqueue failed")
	case <-timer.C:
		metrics.OrderEventsPublishFailedTotal.Inc()
		eventLog.With(logger.NewField("error", errEnqueueTimeout)).Error("order.status.changed enqueue failed")
	}
}

func (p *Publisher) drain(successes <-chan *sarama.ProducerMessage, errs <-chan *sarama.ProducerError) {
	for successes != nil || errs != nil {
		select {
		case msg, ok := <-successes:
			if !ok {
				successes = nil
				continue
			}
			p.messageLog(msg).With(
				logger.NewField("partition", msg.Partition),
				logger.NewField("offset", msg.Offset),
			).Info("order.status.changed published")
		case perr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			metrics.OrderEventsPublishFailedTotal.Inc()
			p.messageLog(perr.Msg).With(logger.NewField("error", perr.Err)).Error("order.status.changed publish failed")
		}
	}
}

func (p *Publisher) messageLog(msg *sarama.ProducerMessage) logger.Logger {
	if msg == nil {
		return p.log.With()
	}
	event, ok := msg.Metadata.(entities.OrderStatusEvent)
	if !ok {
		return p.log.With()
	}
	return p.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
	)
}

// Nop используется без KAFKA_BROKERS.
type Nop struct{}

func (Nop) PublishStatusChanged(_ context.Context, event entities.OrderStatusEvent) {
	metrics.OrderStatusChangesTotal.WithLabelValues(event.Status.String()).Inc()
}
