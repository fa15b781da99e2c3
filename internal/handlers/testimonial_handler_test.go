package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewThenList(t *testing.T) {
	env := newTestEnv(t)

	review := map[string]interface{}{
		"name":    "Karim",
		"rating":  5,
		"comment": "Fast delivery",
		"_id":     "client-chosen",
	}
	resp := env.doJSON(t, http.MethodPost, "/add-review", review)
	requireStatus(t, resp, http.StatusOK)

	var result models.InsertResult
	decode(t, resp, &result)
	assert.True(t, result.Acknowledged)
	require.False(t, result.InsertedID.IsZero())

	resp = env.doJSON(t, http.MethodGet, "/testimonials", nil)
	requireStatus(t, resp, http.StatusOK)

	var testimonials []map[string]interface{}
	decode(t, resp, &testimonials)
	require.Len(t, testimonials, 1)
	assert.Equal(t, result.InsertedID.Hex(), testimonials[0]["_id"])
	assert.Equal(t, "Karim", testimonials[0]["name"])
	assert.Equal(t, float64(5), testimonials[0]["rating"])
	assert.Equal(t, "Fast delivery", testimonials[0]["comment"])
}

func TestAddReviewRejectsBadBody(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, jsonRequest(http.MethodPost, "/add-review", `{}`))
	requireStatus(t, resp, http.StatusBadRequest)

	resp = env.do(t, jsonRequest(http.MethodPost, "/add-review", `["not", "an", "object"]`))
	requireStatus(t, resp, http.StatusBadRequest)

	resp = env.do(t, jsonRequest(http.MethodPost, "/add-review", `{"name":`))
	requireStatus(t, resp, http.StatusBadRequest)

	assert.Empty(t, env.testimonials.items)
}
