package model

type Promotion struct {
	Id          string `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    int    `json:"discount"` // phần trăm
	ValidUntil  string `json:"validUntil"`
	Image       string `json:"image"`
}
