package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starwars/internal/app"
	"starwars/internal/database"
	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp boots the full app on a SQLite in-memory database private to the test.
func setupApp(t *testing.T) (*fiber.App, *repositories.Repositories) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	repos := repositories.NewGORMRepositories(db)
	return app.NewApp(app.Deps{
		Repositories: repos,
		Logger:       zerolog.Nop(),
	}), repos
}

// doJSON sends body (marshalled unless it is a string) and returns status and raw response body.
func doJSON(t *testing.T, a *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestIndex(t *testing.T) {
	a, _ := setupApp(t)

	status, body := doJSON(t, a, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, decode[map[string]string](t, body)["message"])
}

func TestPeopleCreateAndGet(t *testing.T) {
	a, _ := setupApp(t)

	status, created := doJSON(t, a, http.MethodPost, "/people", map[string]string{
		"name":       "Luke Skywalker",
		"birth_year": "19BBY",
		"gender":     "male",
	})
	require.Equal(t, http.StatusCreated, status, string(created))

	person := decode[models.PeopleResponse](t, created)
	assert.NotZero(t, person.ID)
	assert.Equal(t, "Luke Skywalker", person.Name)
	assert.Equal(t, "19BBY", person.BirthYear)
	assert.Equal(t, "male", person.Gender)

	status, fetched := doJSON(t, a, http.MethodGet, fmt.Sprintf("/people/%d", person.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, string(created), string(fetched))

	status, list := doJSON(t, a, http.MethodGet, "/people", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "["+string(created)+"]", string(list))
}

func TestPeopleGetNotFound(t *testing.T) {
	a, _ := setupApp(t)

	status, body := doJSON(t, a, http.MethodGet, "/people/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error": "Person not found"}`, string(body))
}

func TestPeopleNonIntegerIDIsRouterNotFound(t *testing.T) {
	a, _ := setupApp(t)

	for _, id := range []string{"luke", "+1", "-1"} {
		t.Run(id, func(t *testing.T) {
			status, body := doJSON(t, a, http.MethodGet, "/people/"+id, nil)
			assert.Equal(t, http.StatusNotFound, status)
			assert.NotContains(t, string(body), "Person not found")
		})
	}

	status, body := doJSON(t, a, http.MethodPost, "/favorite/planet/+3", map[string]any{"user_id": 1})
	assert.Equal(t, http.StatusNotFound, status, string(body))
	_, body = doJSON(t, a, http.MethodGet, "/users/favorites", nil)
	assert.JSONEq(t, `[]`, string(body))
}

func TestPeopleCreateMissingFields(t *testing.T) {
	a, _ := setupApp(t)

	cases := map[string]any{
		"missing name":       map[string]string{"birth_year": "19BBY", "gender": "male"},
		"empty birth_year":   map[string]string{"name": "Luke", "birth_year": "", "gender": "male"},
		"missing gender":     map[string]string{"name": "Luke", "birth_year": "19BBY"},
		"empty object":       map[string]string{},
		"empty request body": "",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := doJSON(t, a, http.MethodPost, "/people", payload)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.JSONEq(t, `{"error": "Missing required fields"}`, string(body))
		})
	}

	status, list := doJSON(t, a, http.MethodGet, "/people", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(list))
}

func TestPlanetTatooineRoundTrip(t *testing.T) {
	a, _ := setupApp(t)

	status, created := doJSON(t, a, http.MethodPost, "/planets",
		`{"name":"Tatooine","climate":"arid","population":200000}`)
	require.Equal(t, http.StatusCreated, status, string(created))

	planet := decode[models.PlanetResponse](t, created)
	assert.NotZero(t, planet.ID)
	assert.Equal(t, "Tatooine", planet.Name)
	assert.Equal(t, "arid", planet.Climate)
	assert.Equal(t, int64(200000), planet.Population)

	status, fetched := doJSON(t, a, http.MethodGet, fmt.Sprintf("/planets/%d", planet.ID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, string(created), string(fetched))
}

func TestPlanetValidation(t *testing.T) {
	a, _ := setupApp(t)

	cases := map[string]any{
		"missing name":       `{"climate":"frozen","population":1}`,
		"empty climate":      `{"name":"Hoth","climate":"","population":1}`,
		"missing population": `{"name":"Hoth","climate":"frozen"}`,
		"zero population":    `{"name":"Hoth","climate":"frozen","population":0}`,
		"empty object":       map[string]string{},
		"empty request body": "",
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := doJSON(t, a, http.MethodPost, "/planets", payload)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.JSONEq(t, `{"error": "Missing required fields"}`, string(body))
		})
	}

	status, body := doJSON(t, a, http.MethodPost, "/planets", `{"name":"Hoth",`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "Invalid request body"}`, string(body))

	status, list := doJSON(t, a, http.MethodGet, "/planets", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(list))

	status, body = doJSON(t, a, http.MethodGet, "/planets/42", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error": "Planet not found"}`, string(body))
}

func TestUsersAreListedWithoutPasswords(t *testing.T) {
	a, repos := setupApp(t)

	status, body := doJSON(t, a, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	user := &models.User{Email: "han@falcon.net", Password: "kessel-run", IsActive: true}
	require.NoError(t, repos.Users.Create(context.Background(), user))

	status, body = doJSON(t, a, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`[{"id": %d, "email": "han@falcon.net", "is_active": true}]`, user.ID), string(body))
}

func TestFavoritePlanetLifecycle(t *testing.T) {
	a, _ := setupApp(t)

	status, body := doJSON(t, a, http.MethodPost, "/favorite/planet/3", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "user_id is required"}`, string(body))

	status, body = doJSON(t, a, http.MethodPost, "/favorite/planet/3", `{"user_id": 0}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "user_id is required"}`, string(body))

	// No user or planet exists: favorites are not checked against other tables.
	status, body = doJSON(t, a, http.MethodPost, "/favorite/planet/3", map[string]any{"user_id": 1})
	require.Equal(t, http.StatusCreated, status, string(body))
	favorite := decode[models.FavoriteResponse](t, body)
	assert.Equal(t, uint(1), favorite.UserID)
	require.NotNil(t, favorite.PlanetID)
	assert.Equal(t, uint(3), *favorite.PlanetID)
	assert.Nil(t, favorite.PeopleID)
	assert.Contains(t, string(body), `"people_id":null`)

	status, body = doJSON(t, a, http.MethodGet, "/users/favorites", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.FavoriteResponse](t, body), 1)

	status, body = doJSON(t, a, http.MethodDelete, "/favorite/planet/3", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"done": true}`, string(body))

	status, body = doJSON(t, a, http.MethodGet, "/users/favorites", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = doJSON(t, a, http.MethodDelete, "/favorite/planet/3", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error": "Favorite not found"}`, string(body))
}

func TestFavoritePeopleLifecycle(t *testing.T) {
	a, _ := setupApp(t)

	status, body := doJSON(t, a, http.MethodPost, "/favorite/people/4", map[string]any{"user_id": 2})
	require.Equal(t, http.StatusCreated, status, string(body))
	favorite := decode[models.FavoriteResponse](t, body)
	require.NotNil(t, favorite.PeopleID)
	assert.Equal(t, uint(4), *favorite.PeopleID)
	assert.Nil(t, favorite.PlanetID)

	// A planet favorite with the same id is a different row.
	status, _ = doJSON(t, a, http.MethodDelete, "/favorite/planet/4", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doJSON(t, a, http.MethodDelete, "/favorite/people/4", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"done": true}`, string(body))
}

func TestDeleteFavoriteIsDeterministic(t *testing.T) {
	a, _ := setupApp(t)

	for _, userID := range []int{1, 2, 3} {
		status, body := doJSON(t, a, http.MethodPost, "/favorite/planet/1", map[string]any{"user_id": userID})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, _ := doJSON(t, a, http.MethodDelete, "/favorite/planet/1?user_id=2", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, a, http.MethodDelete, "/favorite/planet/1?user_id=2", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Without a user the oldest favorite goes first.
	status, _ = doJSON(t, a, http.MethodDelete, "/favorite/planet/1", nil)
	assert.Equal(t, http.StatusOK, status)

	_, body := doJSON(t, a, http.MethodGet, "/users/favorites", nil)
	remaining := decode[[]models.FavoriteResponse](t, body)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(3), remaining[0].UserID)

	status, body = doJSON(t, a, http.MethodDelete, "/favorite/planet/1?user_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "user_id must be a positive integer"}`, string(body))
}

func TestUnknownRoute(t *testing.T) {
	a, _ := setupApp(t)

	status, body := doJSON(t, a, http.MethodGet, "/starships", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, decode[map[string]string](t, body)["error"], "/starships")
}
