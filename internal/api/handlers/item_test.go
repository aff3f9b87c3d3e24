package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/api/handlers"
	appErrors "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/errors"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/models"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/services/mocks"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleItem(wishlistID, id int64) *models.Item {
	now := time.Now().UTC().Truncate(time.Second)

	return &models.Item{
		ID:          id,
		WishlistID:  wishlistID,
		CustomerID:  "cust-1",
		ProductID:   501,
		ProductName: "Noise cancelling headphones",
		WishDate:    now,
		Prices:      models.NewPrice(decimal.RequireFromString("199.99")),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func itemPath(wishlistID, itemID string) map[string]string {
	return map[string]string{"wishlist_id": wishlistID, "item_id": itemID}
}

func TestCreateItem(t *testing.T) {

	t.Run("Success - Item Created", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		body := `{"product_id":501,"product_name":"Noise cancelling headphones","price":"199.99"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/wishlists/1/items",
			testutils.JSONBody(body), map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		matchesBody := mock.MatchedBy(func(r *models.CreateItemRequest) bool {
			return r.ProductID != nil && *r.ProductID == 501 &&
				r.ProductName != nil && *r.ProductName == "Noise cancelling headphones" &&
				r.PriceValue() != nil && r.PriceValue().String() == "199.99"
		})
		mockService.On("CreateItem", mock.Anything, int64(1), matchesBody).Return(sampleItem(1, 12), nil).Once()

		// Act
		handler.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, testBaseURL+"/wishlists/1/items/12", rr.Header().Get("Location"))

		env := decodeEnvelope[models.Item](t, rr)
		assert.Equal(t, int64(12), env.Data.ID)
		assert.Equal(t, "199.99", env.Data.Prices.String())
		assert.Contains(t, rr.Body.String(), `"prices":199.99`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Price Is Not A Number", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		body := `{"product_id":501,"product_name":"Lamp","price":"cheap"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/wishlists/1/items",
			testutils.JSONBody(body), map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		// Act
		handler.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid field 'price': must be a number")
		mockService.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/wishlists/1/items",
			testutils.JSONBody(""), map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		// Act
		handler.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Request body cannot be empty")
	})

	t.Run("Failure - Duplicate Product", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		body := `{"product_id":501,"product_name":"Lamp","price":10}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/wishlists/1/items",
			testutils.JSONBody(body), map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		mockService.On("CreateItem", mock.Anything, int64(1), mock.Anything).
			Return(nil, appErrors.ConflictError("Item with product_id '501' already exists in this wishlist.")).Once()

		// Act
		handler.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestListItems(t *testing.T) {

	t.Run("Success - Product Filter", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/1/items?product_id=501&product_name=head",
			nil, map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		productID := int64(501)
		mockService.On("ListItems", mock.Anything, int64(1), models.ItemFilter{ProductID: &productID, ProductName: "head"}).
			Return([]models.Item{*sampleItem(1, 12)}, nil).Once()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope[[]models.Item](t, rr)
		assert.Len(t, env.Data, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Non Integer Product ID", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/1/items?product_id=abc",
			nil, map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "product_id must be an integer")
	})

	t.Run("Failure - Unknown Query Parameter", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/1/items?sort=asc",
			nil, map[string]string{"wishlist_id": "1"})
		rr := httptest.NewRecorder()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "sort")
	})

	t.Run("Failure - Wishlist Not Found", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/9/items", nil, map[string]string{"wishlist_id": "9"})
		rr := httptest.NewRecorder()

		mockService.On("ListItems", mock.Anything, int64(9), models.ItemFilter{}).
			Return(nil, appErrors.NotFoundError("Wishlist with id '9' was not found.")).Once()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetItem(t *testing.T) {
	mockService := new(mocks.ItemService)
	handler := handlers.NewItemHandler(mockService, testBaseURL)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/1/items/12", nil, itemPath("1", "12"))
		rr := httptest.NewRecorder()

		mockService.On("GetItem", mock.Anything, int64(1), int64(12)).Return(sampleItem(1, 12), nil).Once()

		// Act
		handler.GetItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Invalid Item ID", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/1/items/x", nil, itemPath("1", "x"))
		rr := httptest.NewRecorder()

		// Act
		handler.GetItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid item_id 'x'")
	})

	t.Run("Failure - Item In Another Wishlist", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/wishlists/2/items/12", nil, itemPath("2", "12"))
		rr := httptest.NewRecorder()

		mockService.On("GetItem", mock.Anything, int64(2), int64(12)).
			Return(nil, appErrors.NotFoundError("Item with id '12' was not found in Wishlist '2'.")).Once()

		// Act
		handler.GetItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateItem(t *testing.T) {

	t.Run("Success - Clears Price", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/wishlists/1/items/12",
			testutils.JSONBody(`{"price":null}`), itemPath("1", "12"))
		rr := httptest.NewRecorder()

		updated := sampleItem(1, 12)
		updated.Prices = models.Price{}

		clearsPrice := mock.MatchedBy(func(r *models.UpdateItemRequest) bool {
			return r.PriceValue().Set && r.PriceValue().Null && !r.ProductID.Set
		})
		mockService.On("UpdateItem", mock.Anything, int64(1), int64(12), clearsPrice).Return(updated, nil).Once()

		// Act
		handler.UpdateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"prices":null`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Bad Wish Date", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ItemService)
		handler := handlers.NewItemHandler(mockService, testBaseURL)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/wishlists/1/items/12",
			testutils.JSONBody(`{"wish_date":true}`), itemPath("1", "12"))
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid field 'wish_date'")
		mockService.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteItem(t *testing.T) {
	mockService := new(mocks.ItemService)
	handler := handlers.NewItemHandler(mockService, testBaseURL)

	t.Run("Success - No Content", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/wishlists/1/items/12", nil, itemPath("1", "12"))
		rr := httptest.NewRecorder()

		mockService.On("DeleteItem", mock.Anything, int64(1), int64(12)).Return(nil).Once()

		// Act
		handler.DeleteItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Unexpected Error Hidden", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/wishlists/1/items/13", nil, itemPath("1", "13"))
		rr := httptest.NewRecorder()

		mockService.On("DeleteItem", mock.Anything, int64(1), int64(13)).Return(assert.AnError).Once()

		// Act
		handler.DeleteItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "An unexpected error occurred")
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}
