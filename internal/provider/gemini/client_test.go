package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

func candidateResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func newTestServer(t *testing.T, modelText string, capture *generateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(modelText)))
	}))
}

func TestGenerateMealPlanParsesFencedJSON(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, "```json\n{\"breakfast\":{\"name\":\"Menemen\",\"calories\":350},\"lunch\":{\"name\":\"Grilled chicken\",\"calories\":550},\"dinner\":{\"name\":\"Lentil soup\",\"calories\":400},\"snack\":{\"name\":\"Yogurt\",\"calories\":150},\"totalCalories\":1450}\n```", nil)
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "test-key", HTTPClient: srv.Client()}
	plan, err := c.GenerateMealPlan(context.Background(), 1500, "en")
	require.NoError(t, err)
	assert.Equal(t, "Menemen", plan.Breakfast.Name)
	assert.Equal(t, 1450, plan.TotalCalories)
}

func TestEstimateCaloriesReturnsPositiveMagnitude(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, `{"calories": -412.6}`, nil)
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "test-key", HTTPClient: srv.Client()}
	calories, err := c.EstimateCaloriesFromText(context.Background(), model.LogWorkout, "45 minute run", 85, "en")
	require.NoError(t, err)
	assert.Equal(t, 413, calories)
}

func TestEstimateCaloriesRejectsUnknownKind(t *testing.T) {
	t.Parallel()
	c := &Client{APIKey: "test-key"}
	_, err := c.EstimateCaloriesFromText(context.Background(), model.LogWeight, "x", 85, "en")
	assert.Error(t, err)
}

func TestGenerateDailyTipSendsProfileAndLogs(t *testing.T) {
	t.Parallel()
	var captured generateRequest
	srv := newTestServer(t, `{"title":"Keep going","summary":"Solid week","focus_point":"Stay under 1850 kcal","insightful_tip":"Protein first"}`, &captured)
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "test-key", HTTPClient: srv.Client()}
	calories := 500
	profile := model.UserProfile{Age: 30, Gender: model.GenderMale, CurrentWeightKg: 85, TargetWeightKg: 78, DailyCalorieTarget: 2000}
	logs := []model.LogEntry{{ID: 1, Date: "2025-06-15", Type: model.LogFood, Name: "Soup", Calories: &calories}}

	tip, err := c.GenerateDailyTip(context.Background(), profile, logs, "en", 1850)
	require.NoError(t, err)
	assert.Equal(t, "Keep going", tip.Title)
	assert.Equal(t, "Stay under 1850 kcal", tip.FocusPoint)

	require.Len(t, captured.Contents, 1)
	require.NotEmpty(t, captured.Contents[0].Parts)
	prompt := captured.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Today's Adjusted Calorie Target: 1850 kcal")
	assert.Contains(t, prompt, `"name": "Soup"`)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
}

func TestAnalyzeFoodImageRequiresData(t *testing.T) {
	t.Parallel()
	c := &Client{APIKey: "test-key"}
	_, err := c.AnalyzeFoodImage(context.Background(), nil, "image/jpeg", "en")
	assert.Error(t, err)
}

func TestGenerateFailsWithoutAPIKey(t *testing.T) {
	t.Parallel()
	c := &Client{}
	_, err := c.GenerateMealPlan(context.Background(), 1500, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestGenerateFailsOnNonSuccessStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "test-key", HTTPClient: srv.Client()}
	_, err := c.GenerateMealPlan(context.Background(), 1500, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDecodeModelJSONStripsFences(t *testing.T) {
	t.Parallel()
	var out struct {
		Calories int `json:"calories"`
	}
	require.NoError(t, decodeModelJSON("```json\n{\"calories\": 250}\n```", &out))
	assert.Equal(t, 250, out.Calories)
}
