package models

// Response codes used in the API envelope
const (
	CodeSuccess = "Success"
	CodeError   = "Error"
)

// Result is the uniform envelope returned by every endpoint.
type Result[T any] struct {
	Content             T      `json:"content"`
	ResponseCode        string `json:"responseCode"`
	ResponseDescription string `json:"responseDescription"`
	IsSuccess           bool   `json:"isSuccess"`
}

// OK wraps a payload in a success envelope.
func OK[T any](content T, description string) Result[T] {
	return Result[T]{
		Content:             content,
		ResponseCode:        CodeSuccess,
		ResponseDescription: description,
		IsSuccess:           true,
	}
}

// Fail builds an error envelope with a null content field.
func Fail(description string) Result[any] {
	return Result[any]{
		ResponseCode:        CodeError,
		ResponseDescription: description,
		IsSuccess:           false,
	}
}
