package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdashik24x7/portfolio/internal/contact"
)

type contactFormView struct {
	Message contact.Message
	Errors  contact.FieldErrors
}

type contactResultView struct {
	OK   bool
	Text string
}

func (s *Server) setupContactRoutes(r *gin.Engine) {
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form", contactFormView{})
	})
	r.POST("/contact", s.submitContact)
}

// submitContact answers with an HTML fragment in every case so HTMX swaps
// it in place of the form.
func (s *Server) submitContact(c *gin.Context) {
	msg, err := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}.Normalize()

	var fe contact.FieldErrors
	if errors.As(err, &fe) {
		c.HTML(http.StatusOK, "contact-form", contactFormView{Message: msg, Errors: fe})
		return
	}

	if err := s.mailer.Send(c.Request.Context(), msg); err != nil {
		s.logger.Error("contact mail failed", "request_id", requestID(c), "err", err)
		c.HTML(http.StatusOK, "contact-result", contactResultView{
			Text: "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	c.HTML(http.StatusOK, "contact-result", contactResultView{
		OK:   true,
		Text: "Thank you for your message! I'll get back to you soon.",
	})
}
