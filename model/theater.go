package model

type Theater struct {
	Id               string `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	ZipCode          string `json:"zipCode"`
	PhoneNumber      string `json:"phoneNumber"`
	ScreenCount      int    `json:"screenCount"`
	ParkingAvailable bool   `json:"parkingAvailable"`
	Facilities       string `json:"facilities"`
}
