package dish

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"expiry-tracker/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() domain.IngredientList {
	return domain.IngredientList{
		Ingredients: []domain.Ingredient{
			{Name: "Milk", ExpiryType: domain.ExpiryTypeConsumptionLimit, ExpiryDate: "2024-05-01"},
		},
		Purpose: "夕食",
	}
}

func TestProposeSendsJapaneseKeyedPayload(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/propose_dish/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Write([]byte(`{"Dishes":[{"dish":"Stew","ingredients":["Milk","Potato"],"steps":["chop","simmer"]}]}`))
	}))
	defer srv.Close()

	client := NewDishClient(srv.URL, validator.New())
	proposal, err := client.Propose(context.Background(), testPayload())
	require.NoError(t, err)

	list, ok := gotBody["食材リスト"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	entry := list[0].(map[string]any)
	assert.Equal(t, "Milk", entry["食材"])
	assert.Equal(t, domain.ExpiryTypeConsumptionLimit, entry["期限種類"])
	assert.Equal(t, "2024-05-01", entry["期限"])
	assert.Equal(t, "夕食", gotBody["目的"])

	require.Len(t, proposal.Dishes, 1)
	assert.Equal(t, "Stew", proposal.Dishes[0].Dish)
	assert.Equal(t, []string{"Milk", "Potato"}, proposal.Dishes[0].Ingredients)
	assert.Equal(t, []string{"chop", "simmer"}, proposal.Dishes[0].Steps)
}

func TestProposeRejectsEmptyIngredientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for an invalid payload")
	}))
	defer srv.Close()

	client := NewDishClient(srv.URL, validator.New())
	_, err := client.Propose(context.Background(), domain.IngredientList{Purpose: "夕食"})
	assert.Error(t, err)
}

func TestProposeErrorOnNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewDishClient(srv.URL, validator.New())
	_, err := client.Propose(context.Background(), testPayload())
	assert.Error(t, err)
}

func TestProposeErrorOnMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewDishClient(srv.URL, validator.New())
	_, err := client.Propose(context.Background(), testPayload())
	assert.Error(t, err)
}
