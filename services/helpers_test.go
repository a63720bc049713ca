package services

import (
	"sync"

	"github.com/mohitkushwaha4020/zaika/entity"
)

func customerInfoFixture(name, phone, address string) entity.CustomerInfo {
	info := entity.CustomerInfo{Name: name, Phone: phone}
	if address != "" {
		info.Address = &entity.Address{FullAddress: address}
	}
	return info
}

func validOrderReq() *CreateOrderReq {
	return &CreateOrderReq{
		Items: []OrderLineIn{
			{ItemID: 1, Name: "Butter Chicken", Price: 320, Quantity: 1},
			{ItemID: 2, Name: "Garlic Naan", Price: 60, Quantity: 2},
		},
		Total:        440,
		CustomerInfo: customerInfoFixture("Asha", "9876500000", "12 Main Road"),
	}
}

// recordedEvent captures one broadcast; empty Room means "to all".
type recordedEvent struct {
	Room  string
	Event string
	Data  any
}

type recorderBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorderBroadcaster) ToRoom(room, event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Room: room, Event: event, Data: data})
}

func (r *recorderBroadcaster) ToAll(event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Event: event, Data: data})
}

func (r *recorderBroadcaster) named(event string) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []recordedEvent
	for _, e := range r.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
