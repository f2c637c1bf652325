package contact

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdesk/email"
)

// Dispatch steps, in sending order.
const (
	StepNotify  = "notify"
	StepConfirm = "confirm"
)

// DispatchError reports which of the two sends failed. Email cannot be
// rolled back, so a confirm-step failure means the operator notification
// already went out even though the submission is reported as failed.
type DispatchError struct {
	Step string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("contact dispatch failed at %s step: %v", e.Step, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

type ContactModule struct {
	sender   email.Sender
	operator string
}

func NewContactModule(sender email.Sender, operatorEmail string) *ContactModule {
	return &ContactModule{
		sender:   sender,
		operator: operatorEmail,
	}
}

func (m *ContactModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/contact", m.submit)
}

type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (m *ContactModule) submit(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if form.Name == "" {
		form.Name = "User"
	}
	if form.Subject == "" {
		form.Subject = "No Subject"
	}

	if err := m.dispatch(form); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully!",
	})
}

// dispatch sends the operator notification, then the submitter
// confirmation. Either failure fails the whole submission.
func (m *ContactModule) dispatch(form contactForm) error {
	subject, body := email.ContactNotification(form.Name, form.Email, form.Subject, form.Message)
	if err := m.sender.Send(m.operator, subject, body); err != nil {
		return &DispatchError{Step: StepNotify, Err: err}
	}

	subject, body = email.ContactConfirmation(form.Name)
	if err := m.sender.Send(form.Email, subject, body); err != nil {
		return &DispatchError{Step: StepConfirm, Err: err}
	}

	return nil
}
