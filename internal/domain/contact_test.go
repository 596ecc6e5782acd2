package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageNormalize(t *testing.T) {
	t.Parallel()

	m, err := ContactMessage{Name: " Jane ", Email: "jane@x.com", Phone: "090", Message: " hi\n"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Jane", m.Name)
	assert.Equal(t, "hi", m.Message)

	_, err = ContactMessage{Name: "Jane", Message: "   "}.Normalize()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"email", "phone", "message"}, ve.Fields)
	assert.Equal(t, "All fields are required", ve.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
