// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/artmint/artmint-backend/internal/config"
	"github.com/artmint/artmint-backend/internal/repository"
)

type APITestSuite struct {
	suite.Suite
	engine *gin.Engine
	store  *repository.MemoryStore
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	// Zero quotas disable every rate-limit tier.
	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}

	suite.store = repository.NewMemoryStore()
	suite.engine = Initialize(suite.store, cfg, logger)
}

func (suite *APITestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.engine.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var envelope map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func (suite *APITestSuite) data(w *httptest.ResponseRecorder) map[string]interface{} {
	envelope := suite.decode(w)
	data, ok := envelope["data"].(map[string]interface{})
	require.True(suite.T(), ok, "response has no data object: %s", w.Body.String())
	return data
}

// registerArtist returns the new artist's id and access token.
func (suite *APITestSuite) registerArtist(email string) (string, string) {
	w := suite.request(http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":           "Artist",
		"email":          email,
		"wallet_address": strings.Repeat("ab", 32),
		"password":       "TestPass123!",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	data := suite.data(w)
	artist := data["artist"].(map[string]interface{})
	return artist["id"].(string), data["access_token"].(string)
}

func (suite *APITestSuite) TestHealthEndpoint() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func (suite *APITestSuite) TestAuthRequired() {
	w := suite.request(http.MethodPost, "/v1/auctions", "", map[string]string{})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request(http.MethodPost, "/v1/auctions", "garbage-token", map[string]string{})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestAuctionLifecycle() {
	sellerID, sellerToken := suite.registerArtist("seller@example.com")
	_, bidderToken := suite.registerArtist("bidder@example.com")

	// Mint artwork.
	w := suite.request(http.MethodPost, "/v1/artworks", sellerToken, map[string]interface{}{
		"artist_id": sellerID,
		"title":     "Sunset",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	artworkID := suite.data(w)["artwork"].(map[string]interface{})["id"].(string)

	// Mint token for the artwork.
	w = suite.request(http.MethodPost, "/v1/tokens", sellerToken, map[string]interface{}{
		"artwork_id": artworkID,
		"price":      50,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	tokenData := suite.data(w)["token"].(map[string]interface{})
	tokenID := tokenData["id"].(string)
	assert.Equal(suite.T(), "pending", tokenData["status"])

	// Open an auction.
	w = suite.request(http.MethodPost, "/v1/auctions", sellerToken, map[string]interface{}{
		"token_id": tokenID,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	auctionData := suite.data(w)["auction"].(map[string]interface{})
	auctionID := auctionData["id"].(string)
	assert.Equal(suite.T(), "pending", auctionData["status"])

	// The auction shows up in the active listing.
	w = suite.request(http.MethodGet, "/v1/auctions", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), auctionID)

	// Place a bid.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/bids", bidderToken, map[string]interface{}{
		"amount": 150,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Equal(suite.T(), 150.0, suite.data(w)["auction"].(map[string]interface{})["highest_bid"])

	// An equal bid from the seller is rejected.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/bids", sellerToken, map[string]interface{}{
		"amount": 150,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	// Only the creator may finalize.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/finalize", bidderToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/finalize", sellerToken, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	txnData := suite.data(w)["transaction"].(map[string]interface{})
	assert.Equal(suite.T(), 150.0, txnData["price"])
	assert.Equal(suite.T(), sellerID, txnData["seller_id"])

	// Finalizing twice is rejected.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/finalize", sellerToken, nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	// Token is sold and owned by the winner.
	w = suite.request(http.MethodGet, "/v1/tokens/"+tokenID, "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	soldToken := suite.data(w)["token"].(map[string]interface{})
	assert.Equal(suite.T(), "completed", soldToken["status"])
	owners := soldToken["owner_ids"].([]interface{})
	require.Len(suite.T(), owners, 1)
	assert.Equal(suite.T(), txnData["buyer_id"], owners[0])

	// Transaction is retrievable by id and via token history.
	w = suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", txnData["id"]), "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/tokens/"+tokenID+"/transactions", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// And the auction now lists as completed.
	w = suite.request(http.MethodGet, "/v1/auctions/completed", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), auctionID)
}

func (suite *APITestSuite) TestCancelAuction() {
	sellerID, sellerToken := suite.registerArtist("seller@example.com")
	_, otherToken := suite.registerArtist("other@example.com")

	w := suite.request(http.MethodPost, "/v1/artworks", sellerToken, map[string]interface{}{
		"artist_id": sellerID,
		"title":     "Dawn",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	artworkID := suite.data(w)["artwork"].(map[string]interface{})["id"].(string)

	w = suite.request(http.MethodPost, "/v1/tokens", sellerToken, map[string]interface{}{
		"artwork_id": artworkID,
		"price":      50,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	tokenID := suite.data(w)["token"].(map[string]interface{})["id"].(string)

	w = suite.request(http.MethodPost, "/v1/auctions", sellerToken, map[string]interface{}{
		"token_id": tokenID,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	auctionID := suite.data(w)["auction"].(map[string]interface{})["id"].(string)

	// Non-creator cannot cancel.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/cancel", otherToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/cancel", sellerToken, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Equal(suite.T(), "cancelled", suite.data(w)["auction"].(map[string]interface{})["status"])

	// Bids against a cancelled auction are rejected.
	w = suite.request(http.MethodPost, "/v1/auctions/"+auctionID+"/bids", otherToken, map[string]interface{}{
		"amount": 100,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	// The token stays pending and can be auctioned again.
	w = suite.request(http.MethodGet, "/v1/tokens/"+tokenID, "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "pending", suite.data(w)["token"].(map[string]interface{})["status"])

	w = suite.request(http.MethodPost, "/v1/auctions", sellerToken, map[string]interface{}{
		"token_id": tokenID,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *APITestSuite) TestListingsEmpty() {
	w := suite.request(http.MethodGet, "/v1/auctions", "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/v1/auctions/completed", "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestLoginErrorMapping() {
	suite.registerArtist("ada@example.com")

	// Wrong password is a credential failure.
	w := suite.request(http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "WrongPass123!",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	// A malformed email is a payload problem, not a credential one.
	w = suite.request(http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "not-an-email",
		"password": "TestPass123!",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestProfileEndpoint() {
	artistID, token := suite.registerArtist("me@example.com")

	w := suite.request(http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	artist := suite.data(w)["artist"].(map[string]interface{})
	assert.Equal(suite.T(), artistID, artist["id"])

	// Password hash never leaves the API.
	assert.NotContains(suite.T(), w.Body.String(), "password")
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
