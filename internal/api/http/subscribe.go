package httpapi

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/render"

	"github.com/jekabolt/grbpwr-community/internal/entity"
	"github.com/jekabolt/grbpwr-community/internal/metrics"
)

type SubscribeRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

func (sr *SubscribeRequest) Bind(r *http.Request) error {
	si := entity.SubscriberInsert{
		Name:  sr.Name,
		Email: sr.Email,
		Phone: sr.Phone,
	}
	return si.Validate()
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &SubscribeRequest{}
	if err := render.Bind(r, data); err != nil {
		slog.Default().ErrorContext(ctx, "can't bind subscribe request",
			slog.String("err", err.Error()),
		)
		metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	sub := entity.Subscriber{
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Timestamp: time.Now(),
	}

	// The record goes to the file before the mail attempt. Append failures
	// are logged and swallowed; the signup still proceeds to the welcome mail.
	if err := s.rep.AddSubscriber(ctx, sub); err != nil {
		slog.Default().ErrorContext(ctx, "can't append subscriber record",
			slog.String("err", err.Error()),
			slog.String("email", sub.Email),
		)
	}

	if err := s.mailer.SendNewSubscriber(ctx, sub.Email, sub.Name); err != nil {
		slog.Default().ErrorContext(ctx, "can't send welcome mail",
			slog.String("err", err.Error()),
			slog.String("email", sub.Email),
		)
		metrics.SubscriptionsTotal.WithLabelValues("mail_failed").Inc()
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	metrics.SubscriptionsTotal.WithLabelValues("ok").Inc()
	render.Render(w, r, NewSubscribeResponse())
}

func (s *Server) getAllSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := s.rep.ListSubscribers(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list subscribers",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if err := render.RenderList(w, r, NewSubscriberListResponse(subs)); err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
}
