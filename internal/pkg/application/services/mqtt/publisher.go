package mqttpub

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/ingress-wunderground/internal/pkg/application/services/weather"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.opentelemetry.io/otel"
)

// appID keys the discovery topics and the device registry entry. Changing
// it would re-register every entity under a new device.
const appID = "wu_mqtt_bridge"

// ackTimeout bounds the wait for broker acknowledgment of each publish
// (QoS 1). Exceeding it fails the run.
const ackTimeout = 10 * time.Second

var tracer = otel.Tracer("wu-mqtt-publisher")

type Config struct {
	TopicPrefix       string
	Retain            bool
	HADiscovery       bool
	HADiscoveryPrefix string
}

type MQTTPublisher interface {
	Connect(ctx context.Context) error
	PublishWeather(ctx context.Context, data *weathersvc.WeatherSnapshot) error
	Disconnect(ctx context.Context)
}

// NewClient creates a paho client for the given broker. Kept separate from
// NewPublisher so tests can hand in a fake client.
func NewClient(host string, port int, username, password, clientID string) mqtt.Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", host, port))
	opts.SetClientID(clientID)
	opts.SetKeepAlive(60 * time.Second)

	if username != "" {
		opts.SetUsername(username)
		opts.SetPassword(password)
	}

	return mqtt.NewClient(opts)
}

func NewPublisher(cfg Config, client mqtt.Client) MQTTPublisher {
	return &publisher{
		cfg:    cfg,
		client: client,
	}
}

type publisher struct {
	cfg    Config
	client mqtt.Client
}

func (p *publisher) Connect(ctx context.Context) error {
	log := logging.GetFromContext(ctx)
	log.Info("connecting to mqtt broker")

	token := p.client.Connect()
	if !token.WaitTimeout(ackTimeout) {
		return fmt.Errorf("timed out connecting to mqtt broker")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to mqtt broker: %w", err)
	}

	return nil
}

func (p *publisher) Disconnect(ctx context.Context) {
	p.client.Disconnect(250)
	logging.GetFromContext(ctx).Info("disconnected from mqtt broker")
}

// publish sends one message at QoS 1 and blocks until the broker
// acknowledges it or the ack timeout elapses.
func (p *publisher) publish(topic string, payload []byte, retain bool) error {
	token := p.client.Publish(topic, 1, retain, payload)
	if !token.WaitTimeout(ackTimeout) {
		return fmt.Errorf("timed out waiting for broker ack on %s", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	return nil
}
