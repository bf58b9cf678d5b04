package http

import (
	"mime"
	"net/http"
	"time"
)

// Response is a fully read HTTP response
type Response struct {
	StatusCode   int
	Status       string
	Headers      http.Header
	Body         []byte
	ResponseTime time.Duration
}

// GetHeader returns the value of the specified header
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// MediaType returns the Content-Type without parameters
func (r *Response) MediaType() string {
	mt, _, err := mime.ParseMediaType(r.GetHeader("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// BodyString returns the response body as a string
func (r *Response) BodyString() string {
	return string(r.Body)
}
