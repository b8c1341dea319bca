package cancel_appointment

type CancelRequest struct {
	CancelNote string `json:"cancelNote"`
}
