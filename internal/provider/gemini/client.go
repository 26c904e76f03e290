package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

// Client calls the Gemini generateContent API. Every method returns an
// error on transport or parse failure; callers retry manually and must not
// treat a failure as a zero value.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	mdl := strings.TrimSpace(c.Model)
	if mdl == "" {
		mdl = defaultModel
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("gemini api key is not set (export GEMINI_API_KEY)")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	payload, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, mdl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// decodeModelJSON strips markdown code fences the model sometimes wraps
// around its JSON before unmarshalling.
func decodeModelJSON(text string, out any) error {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

func languageName(language string) string {
	if strings.EqualFold(strings.TrimSpace(language), "tr") {
		return "Turkish"
	}
	return "English"
}

func (c *Client) GenerateMealPlan(ctx context.Context, calorieTarget int, language string) (*model.MealPlan, error) {
	prompt := fmt.Sprintf(
		"Create a daily meal plan with a total calorie count around %d calories. Include breakfast, lunch, dinner, and one snack. Respond as JSON with keys breakfast, lunch, dinner, snack (each {name, calories}) and totalCalories. Please provide the response and all meal names in %s.",
		calorieTarget, languageName(language))
	text, err := c.generate(ctx, []part{{Text: prompt}})
	if err != nil {
		return nil, fmt.Errorf("generate meal plan: %w", err)
	}
	var plan model.MealPlan
	if err := decodeModelJSON(text, &plan); err != nil {
		return nil, fmt.Errorf("generate meal plan: %w", err)
	}
	return &plan, nil
}

func (c *Client) GenerateWorkoutPlan(ctx context.Context, profile model.UserProfile, language string) (*model.WorkoutPlan, error) {
	prompt := fmt.Sprintf(
		"Create a workout plan for a %d-year-old %s weighing %.1fkg. Their activity level is %s. The goal is weight loss. Respond as JSON with keys focus, estimatedCaloriesBurned, and exercises (array of {name, sets, reps} with sets and reps as strings). Please provide the response and all exercise names in %s.",
		profile.Age, profile.Gender, profile.CurrentWeightKg, profile.ActivityLevel, languageName(language))
	text, err := c.generate(ctx, []part{{Text: prompt}})
	if err != nil {
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}
	var plan model.WorkoutPlan
	if err := decodeModelJSON(text, &plan); err != nil {
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}
	return &plan, nil
}

// EstimateCaloriesFromText estimates intake for food or burn for workouts.
// Kind must be "food" or "workout"; the result is always a positive
// magnitude.
func (c *Client) EstimateCaloriesFromText(ctx context.Context, kind model.LogType, text string, weightKg float64, language string) (int, error) {
	var prompt string
	switch kind {
	case model.LogFood:
		prompt = fmt.Sprintf("Estimate the calories for this food: %q. Respond as JSON: {\"calories\": number}. The user's language is %s.", text, language)
	case model.LogWorkout:
		prompt = fmt.Sprintf("Estimate the calories burned for a %.1fkg person doing this workout: %q. Respond as JSON: {\"calories\": number}. The user's language is %s.", weightKg, text, language)
	default:
		return 0, fmt.Errorf("invalid estimate kind %q (use food or workout)", kind)
	}
	raw, err := c.generate(ctx, []part{{Text: prompt}})
	if err != nil {
		return 0, fmt.Errorf("estimate calories: %w", err)
	}
	var result struct {
		Calories float64 `json:"calories"`
	}
	if err := decodeModelJSON(raw, &result); err != nil {
		return 0, fmt.Errorf("estimate calories: %w", err)
	}
	return int(math.Round(math.Abs(result.Calories))), nil
}

type FoodAnalysis struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

func (c *Client) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType, language string) (*FoodAnalysis, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	parts := []part{
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
		{Text: fmt.Sprintf("Identify the food in this image and estimate its total calories. Respond as JSON: {\"name\": string, \"calories\": number}. Provide the food name in %s.", languageName(language))},
	}
	raw, err := c.generate(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("analyze food image: %w", err)
	}
	var analysis FoodAnalysis
	if err := decodeModelJSON(raw, &analysis); err != nil {
		return nil, fmt.Errorf("analyze food image: %w", err)
	}
	return &analysis, nil
}

func (c *Client) GenerateDailyTip(ctx context.Context, profile model.UserProfile, recentLogs []model.LogEntry, language string, adaptiveTarget int) (model.TipContent, error) {
	logsJSON, err := json.MarshalIndent(recentLogs, "", "  ")
	if err != nil {
		return model.TipContent{}, fmt.Errorf("encode recent logs: %w", err)
	}
	prompt := fmt.Sprintf(`You are an AI weight loss coach. Your tone is encouraging, insightful, and supportive.
Analyze the user's profile, their logs from the last 7 days, and their dynamically adjusted calorie target for today.
Provide a structured and detailed analysis with a title, a summary, a focus point for today, and an insightful tip.
- The title should be short and motivational.
- The summary should analyze their recent performance (calorie intake vs. target, weight trend).
- The focus_point should be a concrete, actionable task for today, related to their adjusted target.
- The insightful_tip should be a useful piece of advice about nutrition, fitness, or mindset.

Respond in %s as JSON: {"title": string, "summary": string, "focus_point": string, "insightful_tip": string}.

User Profile:
- Age: %d, Gender: %s
- Current Weight: %.1f kg, Target Weight: %.1f kg
- Base Daily Calorie Target: %d kcal
- Today's Adjusted Calorie Target: %d kcal

Recent Logs (JSON):
%s

Based on all this data, provide your structured analysis.`,
		languageName(language), profile.Age, profile.Gender, profile.CurrentWeightKg, profile.TargetWeightKg,
		profile.DailyCalorieTarget, adaptiveTarget, logsJSON)

	raw, err := c.generate(ctx, []part{{Text: prompt}})
	if err != nil {
		return model.TipContent{}, err
	}
	var tip model.TipContent
	if err := decodeModelJSON(raw, &tip); err != nil {
		return model.TipContent{}, err
	}
	return tip, nil
}
