package request

type IssueCodeRequest struct {
	Tokens      int32  `json:"tokens" binding:"required,min=1,max=500"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
