package httperr

// Response is the envelope written by the error and recovery middleware for
// failures that escape the handlers. Handlers write their own flat bodies.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}
