package notifier

import (
	"context"
	"sync"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPChannel is the subset of *amqp091.Channel the notifier publishes with.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQNotifier struct {
	Channel   AMQPChannel
	QueueName string
	Log       *zap.Logger
	mu        sync.Mutex
}

func NewRabbitMQNotifier(channel AMQPChannel, queueName string, logger *zap.Logger) contracts.Notifier {
	return &rabbitMQNotifier{
		Channel:   channel,
		QueueName: queueName,
		Log:       logger,
	}
}

// DeclareNotificationQueue opens a channel and declares the durable notification queue.
func DeclareNotificationQueue(conn *amqp091.Connection, queueName string) (*amqp091.Channel, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return channel, nil
}

func (n *rabbitMQNotifier) Notify(ctx context.Context, notification *responses.Notification) error {
	requestID := utils.RequestIDFromContext(ctx)

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	// amqp091 channels are not safe for concurrent publishing
	n.mu.Lock()
	err = n.Channel.PublishWithContext(ctx, "", n.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    requestID,
		Headers: amqp091.Table{
			constvars.LoggingResourceKey: notification.Resource,
			"level":                      notification.Level,
		},
	})
	n.mu.Unlock()
	if err != nil {
		n.Log.Error("rabbitMQNotifier.Notify error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, n.QueueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}

	n.Log.Info("rabbitMQNotifier.Notify published notification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, n.QueueName),
		zap.String(constvars.LoggingResourceKey, notification.Resource),
	)
	return nil
}
