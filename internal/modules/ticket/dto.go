package ticket

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
}

type UpdateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
