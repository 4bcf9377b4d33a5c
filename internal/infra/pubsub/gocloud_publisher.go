package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	// Registers the mem:// scheme.
	_ "gocloud.dev/pubsub/mempubsub"

	"tracker/internal/domain/service"
)

// goCloudPublisher implements EventPublisher on a portable Go CDK topic opened by URL.
type goCloudPublisher struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at url. Only schemes whose drivers are linked into the binary resolve.
func NewGoCloudPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := pubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

// PublishAccountStatusChanged sends the event with its attributes as message metadata.
func (p *goCloudPublisher) PublishAccountStatusChanged(ctx context.Context, event *service.AccountStatusChangedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &pubsub.Message{Body: body, Metadata: eventAttributes(event)}); err != nil {
		return errors.Wrap(err, "failed to send event")
	}

	p.logger.Debug("[GoCloudPubSub] Event published", slog.String("account_id", event.AccountID))

	return nil
}

// Close flushes pending sends and shuts the topic down.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
