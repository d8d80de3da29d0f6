package helper

import (
	"context"
	"errors"
	"hash/fnv"
	"math/rand"
	"strconv"

	"cinema_storefront/constants"
	"cinema_storefront/model"
)

// Phòng chiếu chuẩn của storefront: 8 hàng A–H, mỗi hàng 15 ghế.
// Hàng 0–1 premium, 2–5 thường, 6–7 vip.
const (
	SeatRows    = 8
	SeatsPerRow = 15
)

var rowLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

func TierForRow(rowIndex int) string {
	switch {
	case rowIndex < 2:
		return model.SeatPremium
	case rowIndex > 5:
		return model.SeatVIP
	default:
		return model.SeatRegular
	}
}

func TierMultiplier(tier string) float64 {
	switch tier {
	case model.SeatPremium:
		return 1.5
	case model.SeatVIP:
		return 2.0
	default:
		return 1.0
	}
}

// SeatPrice = giá vé suất chiếu × hệ số hạng ghế
func SeatPrice(basePrice float64, tier string) float64 {
	return basePrice * TierMultiplier(tier)
}

// GenerateSeatGrid dựng sơ đồ ghế cho một suất chiếu.
// bookedSeats là danh sách từ backend (nguồn chính thống); khi nil thì
// mô phỏng ~70% ghế trống, seed theo id suất chiếu để các lần dựng lại khớp nhau.
func GenerateSeatGrid(showtimeId string, basePrice float64, bookedSeats []string) model.SeatGrid {
	bookedSet := make(map[string]bool, len(bookedSeats))
	for _, id := range bookedSeats {
		bookedSet[id] = true
	}

	var rng *rand.Rand
	if bookedSeats == nil {
		rng = rand.New(rand.NewSource(seatSeed(showtimeId)))
	}

	grid := model.SeatGrid{
		ShowtimeId: showtimeId,
		Rows:       SeatRows,
		SeatsByRow: SeatsPerRow,
		BasePrice:  basePrice,
		Seats:      make([]model.Seat, 0, SeatRows*SeatsPerRow),
	}

	for rowIndex, row := range rowLetters {
		tier := TierForRow(rowIndex)
		for number := 1; number <= SeatsPerRow; number++ {
			seatId := seatLabel(row, number)

			available := true
			if rng != nil {
				available = rng.Float64() > 0.3
			} else {
				available = !bookedSet[seatId]
			}

			grid.Seats = append(grid.Seats, model.Seat{
				Id:          seatId,
				Row:         row,
				Number:      number,
				IsAvailable: available,
				Type:        tier,
				Price:       SeatPrice(basePrice, tier),
			})
		}
	}
	return grid
}

func seatLabel(row string, number int) string {
	return row + strconv.Itoa(number)
}

func seatSeed(showtimeId string) int64 {
	h := fnv.New64a()
	h.Write([]byte(showtimeId))
	return int64(h.Sum64())
}

// PriceSelection tính tổng tiền cho các ghế đã chọn.
// Ghế lạ hoặc đã bị đặt làm hỏng cả selection, không tính phần còn lại.
func PriceSelection(grid model.SeatGrid, selected []string) (float64, error) {
	if len(selected) == 0 {
		return 0, errors.New(constants.NO_SEAT_SELECTED)
	}

	byId := make(map[string]model.Seat, len(grid.Seats))
	for _, seat := range grid.Seats {
		byId[seat.Id] = seat
	}

	var total float64
	for _, id := range selected {
		seat, ok := byId[id]
		if !ok || !seat.IsAvailable {
			return 0, errors.New(constants.SEAT_NOT_AVAILABLE)
		}
		total += seat.Price
	}
	return total, nil
}

// LoadSeatGrid dựng sơ đồ ghế cho suất chiếu: nguồn chính thống là endpoint
// seats của backend, backend không trả được thì rơi về mô phỏng.
func LoadSeatGrid(ctx context.Context, showtime *model.Showtime) model.SeatGrid {
	var booked []string
	if availability, err := Remote.GetShowtimeSeats(ctx, showtime.Id); err == nil && availability != nil {
		booked = availability.BookedSeatsList
		if booked == nil {
			booked = []string{}
		}
	}
	return GenerateSeatGrid(showtime.Id, showtime.TicketPrice, booked)
}
