package handler

import (
	"context"
	"sync"

	"cinema_storefront/database"
	"cinema_storefront/helper"

	"github.com/gofiber/contrib/websocket"
)

var (
	clients = make(map[string]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// WebSocketConnection giữ kết nối theo room của từng suất chiếu,
// phát lại mọi cập nhật ghế được publish lên kênh Redis của suất đó
func WebSocketConnection(c *websocket.Conn) {
	showtimeId := c.Params("id")

	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		if clients[showtimeId] != nil {
			delete(clients[showtimeId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	mu.Lock()
	if clients[showtimeId] == nil {
		clients[showtimeId] = make(map[*websocket.Conn]bool)
	}
	clients[showtimeId][c] = true
	mu.Unlock()

	// Gửi trạng thái suất chiếu lần đầu
	if showtime, ok := helper.CachedShowtime(showtimeId); ok {
		c.WriteJSON(showtime)
	}

	// Sub kênh Redis
	pubsub := database.Redis.Subscribe(context.Background(), "showtime:"+showtimeId)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[showtimeId] {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[showtimeId], conn)
			}
		}
		mu.Unlock()
	}
}
