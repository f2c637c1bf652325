package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeSender records sends and can be told to fail the nth call.
type fakeSender struct {
	sent   []sentMail
	failOn int // 1-based call number to fail, 0 = never
	calls  int
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func setupTestRouter(sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewContactModule(sender, "ops@example.com").RegisterRoutes(router)
	return router
}

func submitForm(router *gin.Engine, form gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(form)
	req, _ := http.NewRequest("POST", "/contact", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContact_Success(t *testing.T) {
	sender := &fakeSender{}
	router := setupTestRouter(sender)

	w := submitForm(router, gin.H{
		"name":    "Alex",
		"email":   "alex@example.com",
		"subject": "Hello",
		"message": "Just saying hi.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "ops@example.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].subject, "Hello")
	assert.Contains(t, sender.sent[0].body, "alex@example.com")
	assert.Equal(t, "alex@example.com", sender.sent[1].to)
	assert.Contains(t, sender.sent[1].body, "Dear Alex")
}

func TestSubmitContact_Defaults(t *testing.T) {
	sender := &fakeSender{}
	router := setupTestRouter(sender)

	w := submitForm(router, gin.H{"email": "alex@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[0].subject, "No Subject")
	assert.Contains(t, sender.sent[1].body, "Dear User")
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	sender := &fakeSender{}
	router := setupTestRouter(sender)

	w := submitForm(router, gin.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, sender.calls)
}

func TestSubmitContact_NotifyFailure(t *testing.T) {
	sender := &fakeSender{failOn: 1}
	router := setupTestRouter(sender)

	w := submitForm(router, gin.H{"email": "alex@example.com", "message": "hi"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "notify")
	assert.Empty(t, sender.sent)
}

func TestSubmitContact_ConfirmFailure(t *testing.T) {
	sender := &fakeSender{failOn: 2}
	router := setupTestRouter(sender)

	w := submitForm(router, gin.H{"email": "alex@example.com", "message": "hi"})

	// The notification already went out; email cannot be rolled back, but
	// the submission as a whole is still reported as failed.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "confirm")
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "ops@example.com", sender.sent[0].to)
}

func TestDispatchError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &DispatchError{Step: StepNotify, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "notify")
}
