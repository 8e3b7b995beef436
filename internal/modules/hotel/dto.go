package hotel

type UpsertHotelRequest struct {
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location"`
	Address      string `json:"address"`
	ContactPhone string `json:"contactPhone"`
	Category     string `json:"category"`
	Rating       string `json:"rating"`
}
