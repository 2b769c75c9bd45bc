package notification

import (
	"fmt"

	"hotelinfo/dto"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService drops every message
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

type MessageBuilder struct {
	event dto.BookingEvent
}

func NewBookingCreatedMessage(event dto.BookingEvent) *MessageBuilder {
	event.Type = "booking.created"
	return &MessageBuilder{event: event}
}

func (b *MessageBuilder) Build() (string, error) {
	payload, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
