package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const queueSize = 1000

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher queues events and writes them from a single goroutine.
// When the queue is full new events are dropped with a warning.
type KafkaPublisher struct {
	writer KafkaWriter
	events chan Evento
	log    zerolog.Logger
	done   chan struct{}
	once   sync.Once
}

// NewKafkaPublisher writes to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, log), nil
}

func newKafkaPublisher(writer KafkaWriter, log zerolog.Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		writer: writer,
		events: make(chan Evento, queueSize),
		log:    log.With().Str("component", "kafka_publisher").Logger(),
		done:   make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *KafkaPublisher) Publish(_ context.Context, evento Evento) {
	select {
	case p.events <- evento:
	default:
		p.log.Warn().
			Str("catalogo", evento.Catalogo).
			Uint64("id", evento.ID).
			Str("tipo", string(evento.Tipo)).
			Msg("event queue full, dropping event")
	}
}

func (p *KafkaPublisher) loop() {
	defer close(p.done)
	for evento := range p.events {
		p.send(evento)
	}
}

func (p *KafkaPublisher) send(evento Evento) {
	value, err := json.Marshal(evento)
	if err != nil {
		p.log.Error().Err(err).Str("catalogo", evento.Catalogo).Msg("failed to serialize event")
		return
	}

	// keyed by catalog and row so every change of a row lands on one partition
	key := evento.Catalogo + ":" + strconv.FormatUint(evento.ID, 10)
	if err := p.writer.WriteMessages(context.Background(), kafka.Message{Key: []byte(key), Value: value}); err != nil {
		p.log.Error().Err(err).
			Str("catalogo", evento.Catalogo).
			Uint64("id", evento.ID).
			Str("tipo", string(evento.Tipo)).
			Msg("failed to publish event")
	}
}

// Close drains queued events and closes the writer. Publish must not be
// called after Close.
func (p *KafkaPublisher) Close() error {
	var err error
	p.once.Do(func() {
		close(p.events)
		<-p.done
		err = p.writer.Close()
	})
	return err
}
