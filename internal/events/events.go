package events

import (
	"context"
	"time"
)

type Tipo string

const (
	Agregado    Tipo = "agregado"
	Editado     Tipo = "editado"
	Desactivado Tipo = "desactivado"
	Activado    Tipo = "activado"
)

// Evento describes one change applied to a catalog row.
type Evento struct {
	Tipo      Tipo      `json:"tipo"`
	Catalogo  string    `json:"catalogo"`
	ID        uint64    `json:"id"`
	IdUsuario string    `json:"id_usuario"`
	Fecha     time.Time `json:"fecha"`
}

// Publisher delivers catalog events. Publish must not block the request.
type Publisher interface {
	Publish(ctx context.Context, evento Evento)
	Close() error
}

// NoopPublisher discards every event; used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Evento) {}

func (NoopPublisher) Close() error { return nil }
