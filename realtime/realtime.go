package realtime

import (
	"api/models"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected admin dashboard clients
	broadcast = make(chan RegistrationUpdate)  // Broadcast channel for new registrations
	mutex     sync.Mutex                       // Mutex to protect the clients map
)

// RegistrationUpdate announces a freshly persisted registration to the
// admin dashboard feed
type RegistrationUpdate struct {
	Registration *models.Registration `json:"registration"`
	EventTitle   string               `json:"event_title"`
	EventID      string               `json:"event_id"`
}

// RegisterClient adds a WebSocket client to the registration feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	clients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the registration feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(clients, conn)
	mutex.Unlock()
}

// BroadcastRegistration sends an update to all connected clients
func BroadcastRegistration(update RegistrationUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range clients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
