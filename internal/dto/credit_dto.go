package dto

type SpendRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

type SpendResponse struct {
	Message string `json:"message"`
	Credits int    `json:"credits"`
}
