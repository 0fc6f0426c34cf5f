package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, s any) map[string]string {
	t.Helper()
	verr := Validate(s)
	require.NotNil(t, verr)
	out := map[string]string{}
	for _, fe := range verr.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestNewsTitleTooShort(t *testing.T) {
	errs := fieldErrors(t, &News{Title: "Hi", Content: "body", UserID: 1})

	assert.Equal(t, "The title is too short, 5 characters minimum.", errs["title"])
}

func TestNewsValid(t *testing.T) {
	assert.Nil(t, Validate(&News{Title: "Hello world", Content: "body", UserID: 1}))
}

func TestUserEmailFormat(t *testing.T) {
	errs := fieldErrors(t, &User{Name: "Ana", LastName: "Lee", Email: "not-an-email", Password: "secret1"})

	assert.Equal(t, "The e-mail is not valid.", errs["email"])
}

func TestUserFieldLimits(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}

	errs := fieldErrors(t, &User{
		Name:     string(long),
		LastName: string(long),
		Email:    "way-too-long-address@example-domain.com",
		Password: "abc",
	})

	// Field names are reported the way the API spells them.
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "lastName")
	assert.Equal(t, "The email is too long, 30 characters maximum.", errs["email"])
	assert.Equal(t, "The password is too short, 5 characters minimum.", errs["password"])
}

func TestCommentContentRequired(t *testing.T) {
	errs := fieldErrors(t, &Comment{NewsID: 1, UserID: 1})

	assert.Contains(t, errs, "content")
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}

func TestPublicUserOmitsCredentials(t *testing.T) {
	u := &User{ID: 4, Name: "Ana", LastName: "Lee", Email: "ana@x.com", Password: "hashed"}
	pub := u.Public()

	assert.Equal(t, PublicUser{ID: 4, Name: "Ana", LastName: "Lee", Email: "ana@x.com"}, pub)
}
