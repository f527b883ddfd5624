package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

func TestDashboardService_Summary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Users.Create(ctx, validUser("dash@example.com"))
	require.NoError(t, err)
	_, err = env.Products.Create(ctx, tea())
	require.NoError(t, err)
	_, err = env.Supps.Create(ctx, transport.CreateSupplierRequest{Name: "A", Address: "B", Phone: "C"})
	require.NoError(t, err)

	sum, err := env.Dash.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, repo.Counts{Users: 1, Products: 1, Suppliers: 1}, sum.Counts)
	require.Len(t, sum.Users, 1)
	assert.Equal(t, "dash@example.com", sum.Users[0].Email)
}
