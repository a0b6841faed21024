// Package feed bridges external working-memory sources into a Network's
// Bus, standing in for the "Working-memory → Bus" boundary spec §6
// describes without committing to a transport.
package feed

import (
	"context"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/bittoy/rete/engine"
	"github.com/bittoy/rete/types"
)

// MQTTBus subscribes to an MQTT topic and turns every retained/published
// message into an AddFact call, and every message on a paired retract
// topic into a RemoveFact call — one concrete realization of "add(fact)"
// and "remove(fact)" being any hashable value delivered over any
// transport.
type MQTTBus struct {
	client  mqtt.Client
	network *engine.Network
	logger  types.Logger
	decode  func([]byte) (types.Fact, error)
}

// Option configures an MQTTBus, following the same functional-options
// shape types.Option uses for Config.
type Option func(*MQTTBus)

// WithDecoder overrides how a message payload is turned into a Fact. Facts
// must be equality-comparable per spec §3.1 — a decoder producing maps or
// slices breaks every memory's == comparison, so the default decodes to the
// raw payload string and real deployments should supply a decoder that
// parses into a comparable struct or value.
func WithDecoder(fn func([]byte) (types.Fact, error)) Option {
	return func(b *MQTTBus) { b.decode = fn }
}

// WithLogger sets the logger used for payload decode failures and for
// AddFact/RemoveFact errors inside the message handlers. Subscribe failures
// are returned by SubscribeAdd/SubscribeRemove, not logged.
func WithLogger(logger types.Logger) Option {
	return func(b *MQTTBus) { b.logger = logger }
}

// NewMQTTBus builds an MQTTBus wired to network, using client to subscribe.
// The caller owns client's lifecycle (Connect/Disconnect); NewMQTTBus does
// not subscribe anything itself — SubscribeAdd and SubscribeRemove do.
func NewMQTTBus(client mqtt.Client, network *engine.Network, opts ...Option) *MQTTBus {
	b := &MQTTBus{
		client:  client,
		network: network,
		logger:  types.DefaultLogger(),
		decode:  decodeRawFact,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SubscribeAdd subscribes topic, calling Network.AddFact for every message
// received on it.
func (b *MQTTBus) SubscribeAdd(ctx context.Context, topic string, qos byte) error {
	token := b.client.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		fact, err := b.decode(msg.Payload())
		if err != nil {
			b.logger.Printf("feed: decode add topic=%s error=%v", topic, err)
			return
		}
		if err := b.network.AddFact(ctx, fact); err != nil {
			b.logger.Printf("feed: add fact topic=%s error=%v", topic, err)
		}
	})
	token.Wait()
	return token.Error()
}

// SubscribeRemove subscribes topic, calling Network.RemoveFact for every
// message received on it.
func (b *MQTTBus) SubscribeRemove(ctx context.Context, topic string, qos byte) error {
	token := b.client.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		fact, err := b.decode(msg.Payload())
		if err != nil {
			b.logger.Printf("feed: decode remove topic=%s error=%v", topic, err)
			return
		}
		if err := b.network.RemoveFact(ctx, fact); err != nil {
			b.logger.Printf("feed: remove fact topic=%s error=%v", topic, err)
		}
	})
	token.Wait()
	return token.Error()
}

func decodeRawFact(payload []byte) (types.Fact, error) {
	return string(payload), nil
}
