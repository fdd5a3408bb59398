package response_models

type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type TransactionResponse struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Channel   string `json:"channel,omitempty"`
	PaidAt    *int64 `json:"paid_at,omitempty"`
}
