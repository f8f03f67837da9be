package request_models

type UpdateSOSContactRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,max=40"`
}

type SetSoberSinceRequest struct {
	// Date is a calendar day, YYYY-MM-DD, in the application time zone.
	Date string `json:"date" binding:"required"`
}

type TriggerRequest struct {
	Trigger string `json:"trigger" binding:"required,max=200"`
}
