package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dziennik-posilkow/internal/database"
	"dziennik-posilkow/internal/models"
)

type MealRequest struct {
	Title       string `json:"title" validate:"required" example:"Croissant"`
	Description string `json:"description" example:"A chicken croissant"`
	Diet        *bool  `json:"diet" validate:"required" example:"false"`
}

type MealsResponse struct {
	Meals []models.Meal `json:"meals"`
}

type MealResponse struct {
	Meal *models.Meal `json:"meal"`
}

type SummaryResponse struct {
	Summary *models.MealSummary `json:"summary"`
}

// @Summary      List meals
// @Description  Lists all meals owned by the requesting session. Without a session cookie the list is empty.
// @Tags         meals
// @Produce      json
// @Success      200  {object}  MealsResponse
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /meals [get]
func (s *Server) ListMealsHandler(w http.ResponseWriter, r *http.Request) {
	token := GetSessionFromContext(r.Context())

	// No cookie means no partition; the empty result is safe to return.
	meals := []models.Meal{}
	if token != "" {
		var err error
		meals, err = s.store.ListMealsBySession(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to list meals", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MealsResponse{Meals: meals})
}

// @Summary      Create a meal
// @Description  Creates a meal owned by the requesting session. When the request carries no session cookie a fresh one is minted and set on the response.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        mealRequest  body      MealRequest  true  "Meal fields"
// @Success      201          {null}    nil          "Created"
// @Failure      400          {string}  string       "Bad Request"
// @Failure      500          {string}  string       "Internal Server Error"
// @Router       /meals [post]
func (s *Server) CreateMealHandler(w http.ResponseWriter, r *http.Request) {
	var req MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, _ := s.sessions.ResolveOrCreate(w, r)

	params := database.CreateMealParams{
		ID:          uuid.New(),
		SessionID:   token,
		Title:       req.Title,
		Description: req.Description,
		Diet:        *req.Diet,
	}

	if _, err := s.store.CreateMeal(r.Context(), params); err != nil {
		http.Error(w, "Failed to create meal", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// @Summary      Get a meal
// @Description  Fetches a single meal owned by the requesting session.
// @Tags         meals
// @Produce      json
// @Param        mealId  path      string  true  "Meal ID" format(uuid)
// @Success      200     {object}  MealResponse
// @Failure      400     {string}  string "Bad Request - Invalid meal ID format"
// @Failure      401     {string}  string "Unauthorized"
// @Failure      500     {string}  string "Internal Server Error"
// @Router       /meals/{mealId} [get]
func (s *Server) GetMealHandler(w http.ResponseWriter, r *http.Request) {
	token := GetSessionFromContext(r.Context())

	mealID, err := uuid.Parse(chi.URLParam(r, "mealId"))
	if err != nil {
		http.Error(w, "Invalid meal ID format", http.StatusBadRequest)
		return
	}

	meal, err := s.store.GetMealForSession(r.Context(), mealID, token)
	if err != nil {
		http.Error(w, "Failed to get meal", http.StatusInternalServerError)
		return
	}
	if meal == nil {
		// The gate passed but the row is gone; keep the same answer as for
		// a foreign meal.
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MealResponse{Meal: meal})
}

// @Summary      Update a meal
// @Description  Replaces title, description and diet on a meal owned by the requesting session. id, session_id and created_at never change.
// @Tags         meals
// @Accept       json
// @Param        mealId       path      string       true  "Meal ID" format(uuid)
// @Param        mealRequest  body      MealRequest  true  "Replacement fields"
// @Success      204          {null}    nil    "No Content"
// @Failure      400          {string}  string "Bad Request"
// @Failure      401          {string}  string "Unauthorized"
// @Failure      500          {string}  string "Internal Server Error"
// @Router       /meals/{mealId} [put]
func (s *Server) UpdateMealHandler(w http.ResponseWriter, r *http.Request) {
	token := GetSessionFromContext(r.Context())

	mealID, err := uuid.Parse(chi.URLParam(r, "mealId"))
	if err != nil {
		http.Error(w, "Invalid meal ID format", http.StatusBadRequest)
		return
	}

	var req MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := database.UpdateMealParams{
		ID:          mealID,
		SessionID:   token,
		Title:       req.Title,
		Description: req.Description,
		Diet:        *req.Diet,
	}

	updated, err := s.store.UpdateMeal(r.Context(), params)
	if err != nil {
		http.Error(w, "Failed to update meal", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Delete a meal
// @Description  Deletes a meal owned by the requesting session.
// @Tags         meals
// @Param        mealId  path      string  true  "Meal ID" format(uuid)
// @Success      204     {null}    nil    "No Content"
// @Failure      400     {string}  string "Bad Request - Invalid meal ID format"
// @Failure      401     {string}  string "Unauthorized"
// @Failure      500     {string}  string "Internal Server Error"
// @Router       /meals/{mealId} [delete]
func (s *Server) DeleteMealHandler(w http.ResponseWriter, r *http.Request) {
	token := GetSessionFromContext(r.Context())

	mealID, err := uuid.Parse(chi.URLParam(r, "mealId"))
	if err != nil {
		http.Error(w, "Invalid meal ID format", http.StatusBadRequest)
		return
	}

	deleted, err := s.store.DeleteMeal(r.Context(), mealID, token)
	if err != nil {
		http.Error(w, "Failed to delete meal", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Meal summary
// @Description  Returns total, diet and non-diet counts over the requesting session's meals, computed against a single snapshot.
// @Tags         meals
// @Produce      json
// @Success      200  {object}  SummaryResponse
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /meals/summary [get]
func (s *Server) MealSummaryHandler(w http.ResponseWriter, r *http.Request) {
	token := GetSessionFromContext(r.Context())

	summary := &models.MealSummary{}
	if token != "" {
		txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
			var err error
			summary, err = q.GetMealSummary(r.Context(), token)
			return err
		})
		if txErr != nil {
			http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SummaryResponse{Summary: summary})
}
