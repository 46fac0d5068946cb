package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"insekta-dashboard/pkg/utils"
)

func TestRenderWelcome_EscapesInput(t *testing.T) {
	html, err := renderWelcome(WelcomeMail{
		Name:         "<b>Budi</b>",
		Email:        "budi@example.com",
		TempPassword: "a1b2c3d4",
		LoginURL:     "http://localhost:5173/login",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "a1b2c3d4")
	assert.Contains(t, html, "&lt;b&gt;Budi&lt;/b&gt;")
	assert.Contains(t, html, "http://localhost:5173/login")
}

func TestNew_FallsBackToLogMailer(t *testing.T) {
	m := New(utils.EmailConfig{}, zap.NewNop())
	_, ok := m.(*LogMailer)
	require.True(t, ok)

	assert.NoError(t, m.SendWelcome(context.Background(), WelcomeMail{To: "a@b.c", Name: "A"}))
}
