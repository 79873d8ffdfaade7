package dish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"expiry-tracker/domain"

	"github.com/go-playground/validator/v10"
)

type (
	// DishClient uploads a structured ingredient list to the recipe service
	// and returns its dish proposals. The outgoing payload is validated
	// before anything is sent; any transport or parse failure is an error
	// and the whole result is discarded.
	DishClient interface {
		Propose(ctx context.Context, payload domain.IngredientList) (domain.DishProposal, error)
	}

	dishClient struct {
		endpoint   string
		validator  *validator.Validate
		httpClient *http.Client
	}
)

func NewDishClient(baseURL string, validator *validator.Validate) DishClient {
	return &dishClient{
		endpoint:   strings.TrimRight(baseURL, "/") + "/propose_dish/",
		validator:  validator,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *dishClient) Propose(ctx context.Context, payload domain.IngredientList) (domain.DishProposal, error) {
	if err := c.validator.Struct(payload); err != nil {
		return domain.DishProposal{}, err
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return domain.DishProposal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.DishProposal{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.DishProposal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.DishProposal{}, fmt.Errorf("recipe service error: %s - %s", resp.Status, string(bodyBytes))
	}

	var proposal domain.DishProposal
	if err := json.NewDecoder(resp.Body).Decode(&proposal); err != nil {
		return domain.DishProposal{}, err
	}

	return proposal, nil
}
