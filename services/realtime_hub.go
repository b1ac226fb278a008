package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one open dietitian websocket. Writes go through Send so the
// broadcast path and the keepalive pinger never write concurrently.
type WSClient struct {
	DietitianID uint
	Conn        *websocket.Conn

	writeMu sync.Mutex
}

func (c *WSClient) Send(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans intake-log updates out to the connected dietitians of
// the patients who logged them. Delivery is best-effort; a dietitian who
// is offline simply misses the event.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.DietitianID] == nil {
		h.clients[c.DietitianID] = make(map[*WSClient]struct{})
	}
	h.clients[c.DietitianID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.DietitianID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.DietitianID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// IntakeEvent is the message pushed when one of a dietitian's patients
// appends to their diary.
type IntakeEvent struct {
	Type      string  `json:"type"` // always "intake_logged"
	PatientID uint    `json:"patient_id"`
	Log       *DayLog `json:"log"`
}

// BroadcastIntake pushes the updated day log to every connection the
// patient's dietitian currently holds. A dietitianID of 0 (unassigned
// patient) is a no-op.
func (h *RealtimeHub) BroadcastIntake(dietitianID uint, patientID uint, dayLog *DayLog) {
	if dietitianID == 0 {
		return
	}
	msg, err := json.Marshal(IntakeEvent{Type: "intake_logged", PatientID: patientID, Log: dayLog})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[dietitianID] {
		_ = c.Send(websocket.TextMessage, msg)
	}
}
