package request

type UsageRequest struct {
	Codes []string `json:"codes" binding:"omitempty,max=50"`
}

type RedeemRequest struct {
	Code        string `json:"code" binding:"required"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
