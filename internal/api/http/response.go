package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/jekabolt/grbpwr-community/internal/entity"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

// subscribe

type SubscribeResponse struct {
	Success bool `json:"success"`
}

func NewSubscribeResponse() *SubscribeResponse {
	return &SubscribeResponse{Success: true}
}

func (rd *SubscribeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// subscribers

type SubscriberResponse struct {
	*entity.Subscriber
}

func NewSubscriberResponse(sub *entity.Subscriber) *SubscriberResponse {
	return &SubscriberResponse{Subscriber: sub}
}

func (rd *SubscriberResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewSubscriberListResponse(subs []entity.Subscriber) []render.Renderer {
	list := []render.Renderer{}
	for i := range subs {
		list = append(list, NewSubscriberResponse(&subs[i]))
	}
	return list
}
