package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/domain"
)

func TestNewHealthStatus(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.October, 17, 9, 30, 0, 123_000_000, time.FixedZone("CEST", 2*60*60))
	h := domain.NewHealthStatus("2.3.0", at)

	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "2.3.0", h.Version)
	assert.Equal(t, "2026-10-17T07:30:00.123Z", h.Timestamp)

	parsed, err := time.Parse(time.RFC3339, h.Timestamp)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))
}

func TestWelcomeMessage_JSONShape(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(domain.NewWelcomeMessage("1.0.0", "development", "pod-abc"))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"message":"Welcome to EKS Demo Application!","version":"1.0.0","environment":"development","hostname":"pod-abc"}`,
		string(body))
}

func TestNewAppInfo(t *testing.T) {
	t.Parallel()

	info := domain.NewAppInfo()

	assert.Equal(t, "eks-demo-app", info.App)
	assert.NotEmpty(t, info.Author)
	assert.NotEmpty(t, info.Description)
	require.NotEmpty(t, info.TechStack)
	assert.Equal(t, "Go", info.TechStack[0])
}

func TestTechStack_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := domain.TechStack()
	a[0] = "mutated"

	assert.Equal(t, "Go", domain.TechStack()[0])
}
