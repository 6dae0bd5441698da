package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/dto"
	"github.com/petlink/petlink-api/internal/models"
)

func TestProposal_Create(t *testing.T) {
	r := setupTestRouter(t)

	_, ownerToken := registerAndLogin(t, r, "owner", models.RoleOwner)
	sitterID, sitterToken := registerAndLogin(t, r, "sitter", models.RolePetsitter)

	order := createOrderViaAPI(t, r, ownerToken, gin.H{
		"title":      "Watch my cat",
		"start_date": "2026-09-01T09:00:00Z",
		"end_date":   "2026-09-03T09:00:00Z",
	})

	w := doRequest(t, r, http.MethodPost, "/proposals", sitterToken, gin.H{
		"order_id":     order.ID,
		"petsitter_id": sitterID,
		"price":        25.0,
		"comment":      "Available all weekend",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var proposal dto.ProposalDTO
	decodeJSON(t, w, &proposal)
	require.Equal(t, sitterID, proposal.PetsitterID)
	require.Equal(t, models.ProposalStatusPending, proposal.Status)
}

func TestProposal_Create_PetsitterMismatchForbidden(t *testing.T) {
	r := setupTestRouter(t)

	_, ownerToken := registerAndLogin(t, r, "owner", models.RoleOwner)
	sitterID, _ := registerAndLogin(t, r, "sitter", models.RolePetsitter)
	_, impostorToken := registerAndLogin(t, r, "impostor", models.RolePetsitter)

	order := createOrderViaAPI(t, r, ownerToken, gin.H{
		"title":      "Watch my cat",
		"start_date": "2026-09-01T09:00:00Z",
		"end_date":   "2026-09-03T09:00:00Z",
	})

	// Submitting under someone else's petsitter ID is rejected before the
	// service ever sees it
	w := doRequest(t, r, http.MethodPost, "/proposals", impostorToken, gin.H{
		"order_id":     order.ID,
		"petsitter_id": sitterID,
		"price":        25.0,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProposal_ListByOrder(t *testing.T) {
	r := setupTestRouter(t)

	_, ownerToken := registerAndLogin(t, r, "owner", models.RoleOwner)
	sitterID, sitterToken := registerAndLogin(t, r, "sitter", models.RolePetsitter)

	orderA := createOrderViaAPI(t, r, ownerToken, gin.H{
		"title":      "Order A",
		"start_date": "2026-09-01T09:00:00Z",
		"end_date":   "2026-09-03T09:00:00Z",
	})
	orderB := createOrderViaAPI(t, r, ownerToken, gin.H{
		"title":      "Order B",
		"start_date": "2026-09-05T09:00:00Z",
		"end_date":   "2026-09-07T09:00:00Z",
	})

	for _, orderID := range []uint64{orderA.ID, orderA.ID, orderB.ID} {
		w := doRequest(t, r, http.MethodPost, "/proposals", sitterToken, gin.H{
			"order_id":     orderID,
			"petsitter_id": sitterID,
			"price":        10.0,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/proposals?order_id=%d", orderA.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var proposals []dto.ProposalDTO
	decodeJSON(t, w, &proposals)
	require.Len(t, proposals, 2)
}

func TestProposal_UpdateAndDelete_AuthorOnly(t *testing.T) {
	r := setupTestRouter(t)

	_, ownerToken := registerAndLogin(t, r, "owner", models.RoleOwner)
	sitterID, sitterToken := registerAndLogin(t, r, "sitter", models.RolePetsitter)
	_, rivalToken := registerAndLogin(t, r, "rival", models.RolePetsitter)

	order := createOrderViaAPI(t, r, ownerToken, gin.H{
		"title":      "Watch my cat",
		"start_date": "2026-09-01T09:00:00Z",
		"end_date":   "2026-09-03T09:00:00Z",
	})

	w := doRequest(t, r, http.MethodPost, "/proposals", sitterToken, gin.H{
		"order_id":     order.ID,
		"petsitter_id": sitterID,
		"price":        25.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var proposal dto.ProposalDTO
	decodeJSON(t, w, &proposal)
	path := fmt.Sprintf("/proposals/%d", proposal.ID)

	w = doRequest(t, r, http.MethodPatch, path, rivalToken, gin.H{"price": 20.0})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodPatch, path, sitterToken, gin.H{"price": 20.0})
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &proposal)
	require.Equal(t, 20.0, proposal.Price)

	w = doRequest(t, r, http.MethodDelete, path, rivalToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodDelete, path, sitterToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, path, sitterToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
