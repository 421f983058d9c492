package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age" validate:"gte=0"`
}

func TestCheckValid(t *testing.T) {
	errs := Check(&sampleRequest{Email: "a@b.com", Password: "longenough", Age: 30})
	assert.Empty(t, errs)
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	errs := Check(&sampleRequest{Email: "not-an-email", Password: "short", Age: -1})

	assert.Equal(t, "Invalid email address!", errs["email"])
	assert.Equal(t, "password must be at least 8 characters long!", errs["password"])
	assert.Contains(t, errs["age"], "age must be at least")
}

func TestCheckRequired(t *testing.T) {
	errs := Check(&sampleRequest{})
	assert.Equal(t, "email is required!", errs["email"])
	assert.Equal(t, "password is required!", errs["password"])
}
