package model

type Showtime struct {
	Id              string  `json:"id"`
	MovieId         string  `json:"movieId"`
	ScreenId        string  `json:"screenId"`
	TheaterId       string  `json:"theaterId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Date            string  `json:"date"`
	TicketPrice     float64 `json:"ticketPrice"`
	AvailableSeats  int     `json:"availableSeats"`
	BookedSeatsList []int   `json:"bookedSeatsList,omitempty"`
	Status          string  `json:"status"`
}

// SeatAvailability từ endpoint GET /Showtime/{id}/seats
type SeatAvailability struct {
	TotalSeats       int      `json:"totalSeats"`
	AvailableSeats   int      `json:"availableSeats"`
	BookedSeatsCount int      `json:"bookedSeatsCount"`
	BookedSeatsList  []string `json:"bookedSeatsList"`
}
