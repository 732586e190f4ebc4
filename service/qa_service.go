package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"landlordheaven-backend/generator"
	"landlordheaven-backend/models"

	"github.com/google/generative-ai-go/genai"
)

const (
	qaReviewAPI     = "https://generativelanguage.googleapis.com/v1beta/models/gemini-3-pro-preview:generateContent"
	qaPassThreshold = 80
	qaMaxRetries    = 3
	qaBackoff       = time.Second
)

// QAService scores generated documents after the fact. It is the "separate
// process" that owns the qa_passed/qa_score columns: generation never waits
// on it, and a review failure leaves the document row untouched.
type QAService struct {
	documentStore DocumentStore
	geminiClient  *genai.Client
	httpClient    *http.Client
}

// QAServiceOption is a functional option for QAService
type QAServiceOption func(*QAService)

// QAWithDocumentStore sets the document store
func QAWithDocumentStore(s DocumentStore) QAServiceOption {
	return func(q *QAService) {
		q.documentStore = s
	}
}

// QAWithGeminiClient sets the optional Gemini client. When nil, scoring is
// heuristic-only.
func QAWithGeminiClient(client *genai.Client) QAServiceOption {
	return func(q *QAService) {
		q.geminiClient = client
	}
}

// NewQAService creates a new QA service
func NewQAService(opts ...QAServiceOption) *QAService {
	q := &QAService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Review scores a persisted document and writes the QA fields back. Safe to
// run in a background goroutine; all failures are logged, never returned.
func (q *QAService) Review(ctx context.Context, doc *models.Document) {
	if q.documentStore == nil {
		return
	}

	score := q.heuristicScore(doc)

	if q.geminiClient != nil {
		if llmScore, err := q.geminiScore(ctx, doc); err != nil {
			log.Printf("QA review: Gemini scoring failed for document %s, keeping heuristic score: %v", doc.ID, err)
		} else {
			score = (score + llmScore) / 2
		}
	}

	passed := score >= qaPassThreshold
	if err := q.documentStore.UpdateQA(ctx, doc.ID, passed, score); err != nil {
		log.Printf("QA review: failed to store result for document %s: %v", doc.ID, err)
		return
	}
	log.Printf("QA review: document %s scored %d (passed=%v)", doc.ID, score, passed)
}

// heuristicScore runs the offline checklist: structural completeness, no
// unresolved template output, title consistent with the registry
func (q *QAService) heuristicScore(doc *models.Document) int {
	score := 100
	html := doc.HTMLContent

	if strings.Contains(html, "<no value>") {
		score -= 40
	}
	if len(html) < 500 {
		score -= 30
	}
	if !strings.Contains(html, "</html>") {
		score -= 10
	}
	if def, ok := generator.Lookup(doc.DocumentType); ok && def.Title != doc.DocumentTitle {
		score -= 20
	}

	// Empty answer boxes mean a non-blocking fact was never filled in
	emptyFields := strings.Count(html, `<div class="field-value"></div>`)
	if emptyFields > 5 {
		emptyFields = 5
	}
	score -= emptyFields * 4

	if score < 0 {
		score = 0
	}
	return score
}

// geminiScore asks Gemini to rate the document 0-100, with retry and
// exponential backoff
func (q *QAService) geminiScore(ctx context.Context, doc *models.Document) (int, error) {
	text := doc.HTMLContent
	if len(text) > 30000 {
		text = text[:30000]
	}

	prompt := fmt.Sprintf(`You are reviewing an automatically generated UK legal document for completeness.

DOCUMENT TITLE: %s
DOCUMENT TYPE: %s

DOCUMENT HTML:
%s

Rate the document from 0 to 100 for completeness and internal consistency:
- all party names, addresses and dates filled in
- no empty answer boxes or placeholder text
- wording consistent with the stated document title

Respond with a single integer between 0 and 100 and nothing else.`,
		doc.DocumentTitle, doc.DocumentType, text)

	var lastErr error
	backoff := qaBackoff
	for attempt := 0; attempt < qaMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		score, err := q.callReviewAPI(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		return score, nil
	}
	return 0, fmt.Errorf("review failed after %d attempts: %w", qaMaxRetries, lastErr)
}

// callReviewAPI calls the Gemini generation API directly via HTTP
func (q *QAService) callReviewAPI(ctx context.Context, prompt string) (int, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return 0, fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.0,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", qaReviewAPI, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("API returned no candidates")
	}

	raw := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, fmt.Errorf("API returned empty score text")
	}
	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("unparseable score %q: %w", raw, err)
	}
	if score < 0 || score > 100 {
		return 0, fmt.Errorf("score out of range: %d", score)
	}
	return score, nil
}
