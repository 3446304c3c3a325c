package restapi

// The platform API wraps every successful payload: lists come back as
// {"data": [...]} and single entities as {"data": {...}}.

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type entityEnvelope[T any] struct {
	Data T `json:"data"`
}

// errorBody covers the error shapes the API is known to emit. Only one of
// the fields is ever set.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Msg     string `json:"msg"`
}

func (e errorBody) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	default:
		return e.Msg
	}
}
