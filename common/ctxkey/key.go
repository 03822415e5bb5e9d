package ctxkey

const (
	// RequestModel is the model id as requested by the client.
	// Set in: controller payload and invoke handlers once the body is bound.
	// Read in: handler logs and error responses.
	RequestModel = "request_model"

	// ConvertedRequest holds the serialized vendor payload of the request.
	// Set in: controller.BuildPayload after conversion.
	ConvertedRequest = "converted_request"
)
