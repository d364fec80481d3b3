package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dziennik-posilkow/internal/database"
	"dziennik-posilkow/internal/models"
)

// newTestRouter odtwarza trasy z cmd/server/main.go
func newTestRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/meals", func(r chi.Router) {
		r.Use(testServer.SessionMiddleware)
		r.Get("/", testServer.ListMealsHandler)
		r.Post("/", testServer.CreateMealHandler)
		r.Get("/summary", testServer.MealSummaryHandler)

		r.Route("/{mealId}", func(r chi.Router) {
			r.Use(testServer.RequireMealOwnership)
			r.Get("/", testServer.GetMealHandler)
			r.Put("/", testServer.UpdateMealHandler)
			r.Delete("/", testServer.DeleteMealHandler)
		})
	})
	return r
}

func boolPtr(b bool) *bool { return &b }

func createTestMealAPI(t *testing.T, sessionID, title string, diet bool) *models.Meal {
	meal, err := testServer.store.CreateMeal(context.Background(), database.CreateMealParams{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Title:       title,
		Description: "seeded meal",
		Diet:        diet,
	})
	require.NoError(t, err)
	return meal
}

// postMeal creates a meal through the API and returns the response cookies,
// reusing the given cookies when not nil.
func postMeal(t *testing.T, router chi.Router, cookies []*http.Cookie, payload MealRequest) []*http.Cookie {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/meals", bytes.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	if cookies != nil {
		return cookies
	}
	return rr.Result().Cookies()
}

func listMeals(t *testing.T, router chi.Router, cookies []*http.Cookie) []models.Meal {
	req := httptest.NewRequest("GET", "/meals", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res MealsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	return res.Meals
}

func TestAPI_CreateMeal_MintsSessionCookie(t *testing.T) {
	router := newTestRouter()

	payload := MealRequest{Title: "Croissant", Description: "A chicken croissant", Diet: boolPtr(false)}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/meals", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Empty(t, rr.Body.String())

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, "sessionId", cookie.Name)
	require.NotEmpty(t, cookie.Value)
	require.Equal(t, "/", cookie.Path)
	require.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestAPI_CreateMeal_ReusesExistingSession(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Breakfast", Diet: boolPtr(true)})

	body, _ := json.Marshal(MealRequest{Title: "Lunch", Diet: boolPtr(false)})
	req := httptest.NewRequest("POST", "/meals", bytes.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Empty(t, rr.Result().Cookies(), "no new cookie when session already exists")
	require.Len(t, listMeals(t, router, cookies), 2)
}

func TestAPI_CreateMeal_InvalidBody(t *testing.T) {
	router := newTestRouter()

	cases := map[string]string{
		"malformed json": `{"title": `,
		"missing title":  `{"description": "no title", "diet": true}`,
		"missing diet":   `{"title": "No diet flag"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/meals", bytes.NewReader([]byte(body)))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAPI_ListMeals_ScopedToSession(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Croissant", Description: "A chicken croissant", Diet: boolPtr(false)})
	postMeal(t, router, nil, MealRequest{Title: "Hamburger", Description: "Consumed by other person. Should not be listed", Diet: boolPtr(false)})

	meals := listMeals(t, router, cookies)
	require.Len(t, meals, 1)
	require.Equal(t, "Croissant", meals[0].Title)
	require.Equal(t, "A chicken croissant", meals[0].Description)
	require.False(t, meals[0].Diet)
}

func TestAPI_ListMeals_NoSession(t *testing.T) {
	router := newTestRouter()

	meals := listMeals(t, router, nil)
	require.NotNil(t, meals)
	require.Empty(t, meals)
}

func TestAPI_GetMeal(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Dinner", Description: "Rice and beans", Diet: boolPtr(true)})
	mealID := listMeals(t, router, cookies)[0].ID

	req := httptest.NewRequest("GET", fmt.Sprintf("/meals/%s", mealID), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res MealResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.NotNil(t, res.Meal)
	require.Equal(t, mealID, res.Meal.ID)
	require.Equal(t, "Dinner", res.Meal.Title)
	require.True(t, res.Meal.Diet)
}

func TestAPI_GetMeal_InvalidID(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Any", Diet: boolPtr(false)})

	req := httptest.NewRequest("GET", "/meals/not-a-uuid", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_MealFromAnotherSession_Unauthorized(t *testing.T) {
	router := newTestRouter()

	meal := createTestMealAPI(t, "foreign_owner_session", "Foreign meal", false)
	path := fmt.Sprintf("/meals/%s", meal.ID)
	cookies := postMeal(t, router, nil, MealRequest{Title: "Own meal", Diet: boolPtr(false)})

	updateBody, _ := json.Marshal(MealRequest{Title: "Hijacked", Diet: boolPtr(true)})

	t.Run("without any session cookie", func(t *testing.T) {
		for _, method := range []string{"GET", "PUT", "DELETE"} {
			var req *http.Request
			if method == "PUT" {
				req = httptest.NewRequest(method, path, bytes.NewReader(updateBody))
			} else {
				req = httptest.NewRequest(method, path, nil)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, http.StatusUnauthorized, rr.Code, "method %s", method)
		}
	})

	t.Run("with a foreign session cookie", func(t *testing.T) {
		for _, method := range []string{"GET", "PUT", "DELETE"} {
			var req *http.Request
			if method == "PUT" {
				req = httptest.NewRequest(method, path, bytes.NewReader(updateBody))
			} else {
				req = httptest.NewRequest(method, path, nil)
			}
			for _, c := range cookies {
				req.AddCookie(c)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, http.StatusUnauthorized, rr.Code, "method %s", method)
		}
	})

	// Upewnij się, że posiłek nie został zmieniony
	found, err := testServer.store.GetMealForSession(context.Background(), meal.ID, "foreign_owner_session")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "Foreign meal", found.Title)
}

func TestAPI_UpdateMeal(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Croissant", Description: "A chicken croissant", Diet: boolPtr(false)})
	original := listMeals(t, router, cookies)[0]

	payload := MealRequest{Title: "Croissant", Description: "A chocolate croissant", Diet: boolPtr(true)}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("PUT", fmt.Sprintf("/meals/%s", original.ID), bytes.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)

	updated := listMeals(t, router, cookies)[0]
	require.Equal(t, original.ID, updated.ID)
	require.Equal(t, original.CreatedAt, updated.CreatedAt)
	require.Equal(t, "A chocolate croissant", updated.Description)
	require.True(t, updated.Diet)
}

func TestAPI_UpdateMeal_InvalidBody(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Toast", Diet: boolPtr(false)})
	mealID := listMeals(t, router, cookies)[0].ID

	req := httptest.NewRequest("PUT", fmt.Sprintf("/meals/%s", mealID), bytes.NewReader([]byte(`{"description": "no title or diet"}`)))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_DeleteMeal(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "To be deleted", Diet: boolPtr(false)})
	mealID := listMeals(t, router, cookies)[0].ID

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/meals/%s", mealID), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, listMeals(t, router, cookies))
}

func TestAPI_Summary(t *testing.T) {
	router := newTestRouter()

	cookies := postMeal(t, router, nil, MealRequest{Title: "Croissant", Diet: boolPtr(false)})
	postMeal(t, router, cookies, MealRequest{Title: "Salad", Diet: boolPtr(true)})
	postMeal(t, router, cookies, MealRequest{Title: "Soup", Diet: boolPtr(true)})

	req := httptest.NewRequest("GET", "/meals/summary", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.NotNil(t, res.Summary)
	require.Equal(t, int64(3), res.Summary.Total)
	require.Equal(t, int64(2), res.Summary.Diet)
	require.Equal(t, int64(1), res.Summary.NonDiet)
}

func TestAPI_Summary_NoSession(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/meals/summary", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, int64(0), res.Summary.Total)
	require.Equal(t, int64(0), res.Summary.Diet)
	require.Equal(t, int64(0), res.Summary.NonDiet)
}
