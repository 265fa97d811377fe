package handler

// Response is the envelope shared by every endpoint. Count is a pointer so
// it only appears on list responses, where zero is still meaningful.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func successResponse(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func listResponse(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

func errorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
